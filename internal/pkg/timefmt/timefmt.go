package timefmt

import (
	"fmt"
	"time"
)

// Layout is the wire format for every timestamp the API exchanges:
// second precision, no timezone or offset.
const Layout = "2006-01-02T15:04:05"

// LocalDateTime marshals as Layout instead of RFC 3339.
type LocalDateTime struct {
	time.Time
}

func New(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.Truncate(time.Second)}
}

func NewPtr(t *time.Time) *LocalDateTime {
	if t == nil {
		return nil
	}
	v := New(*t)
	return &v
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid datetime literal: %s", s)
	}
	parsed, err := time.Parse(Layout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("datetime must match %s: %w", Layout, err)
	}
	t.Time = parsed
	return nil
}
