package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput indicates that no document stream was supplied.
	ErrMissingInput = errors.New("missing input")
	// ErrDocumentFormat indicates the input is not a readable PDF.
	ErrDocumentFormat = errors.New("invalid document format")
	// ErrConfiguration indicates a required configuration value is absent.
	ErrConfiguration = errors.New("missing configuration")
	// ErrUpstreamService indicates the hosted model call failed.
	ErrUpstreamService = errors.New("upstream service failure")
	ErrFileTooLarge    = errors.New("file too large")
)

// Wrap annotates err with an operation and a sentinel kind so callers can
// match it with errors.Is.
func Wrap(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}
