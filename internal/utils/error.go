package utils

import (
	"errors"
	"fmt"
)

// ConvertPanicValueToError returns v if it is an error, otherwise v is formatted into a new error.
func ConvertPanicValueToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return fmt.Errorf("%#v", v)
}

// CombineErrors combines errors into a single error with a multiline message, nil errors are ignored.
// The returned error matches each of the combined errors (errors.Is).
func CombineErrors(errs ...error) error {
	return errors.Join(errs...)
}

// CombineErrorsWithPrefixMessage is like CombineErrors but adds a prefix to the message.
func CombineErrorsWithPrefixMessage(prefixMsg string, errs ...error) error {
	err := CombineErrors(errs...)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", prefixMsg, err)
}
