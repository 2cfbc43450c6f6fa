package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin seam over cockroachdb/errors so the rest of the codebase never
// imports it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a reference mark so errors.Is(err, markErr)
// succeeds while the original cause is preserved.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
