package user

import (
	"strings"

	"sharekit/internal/pkg/errs"
)

var (
	ErrNameRequired  = errs.New("user name is required")
	ErrEmailRequired = errs.New("user email is required")
	ErrEmailInvalid  = errs.New("user email is malformed")
)

type User struct {
	ID    int64
	Name  string
	Email string
}

func New(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	return &User{Name: name, Email: email}, nil
}

// ValidateEmail keeps the same loose shape check the request DTO layer
// applies; uniqueness is enforced by the storage constraint.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return ErrEmailInvalid
	}
	return nil
}

// ApplyPatch overwrites only the fields present in the input.
func (u *User) ApplyPatch(name, email *string) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrNameRequired
		}
		u.Name = *name
	}
	if email != nil {
		if err := ValidateEmail(*email); err != nil {
			return err
		}
		u.Email = *email
	}
	return nil
}
