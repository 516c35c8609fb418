// Package errs carries the domain sentinel errors and thin helpers over
// cockroachdb/errors. Usecases Mark infrastructure failures with a sentinel
// so handlers can map them to HTTP statuses with errors.Is.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an equivalence mark, keeping err's message and
// stack while letting errors.Is(err, markErr) succeed.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
