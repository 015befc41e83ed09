package json2yaml

import (
	"errors"
	"fmt"
	"io/fs"
)

// InvalidSourceError denotes a path argument that is neither a regular file nor a directory.
type InvalidSourceError struct {
	Path string

	// Err is the underlying filesystem error, if any.
	Err error
}

// Error returns the formatted source error.
func (e *InvalidSourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s is not a known type", e.Path)
	}

	err := e.Err
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}

	return fmt.Sprintf("%s is not a usable source: %s", e.Path, err)
}

func (e *InvalidSourceError) Unwrap() error {
	return e.Err
}

// MalformedJSONError happens when a source does not hold exactly one valid JSON document.
type MalformedJSONError struct {
	Source string
	Err    error
}

// Error returns the formatted parse error.
func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in %s: %s", e.Source, e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// summarizeErrors formats the errors of a run. Each of them has been logged
// when it happened, so several collapse to a count.
func summarizeErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	return fmt.Sprintf("%d sources failed to convert", len(errs))
}
