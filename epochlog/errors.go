package epochlog

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every error returned by this package wraps exactly one of
// these, test for them with errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrFileSystem    = errors.New("file system error")
	ErrParse         = errors.New("parse error")
	ErrFieldMissing  = errors.New("field missing")
)

type FieldMissingError struct {
	File  string
	Step  int
	Field string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("%s: %s step %d: missing %q", ErrFieldMissing, e.File, e.Step, e.Field)
}

func (e *FieldMissingError) Unwrap() error {
	return ErrFieldMissing
}
