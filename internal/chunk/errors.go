package chunk

import "errors"

// ErrSourceUnavailable indicates the text source could not be opened or read.
var ErrSourceUnavailable = errors.New("chunk: source unavailable")

// SourceError wraps a failure to access the text source with its path.
type SourceError struct {
	Path    string
	Wrapped error
}

func (e *SourceError) Error() string {
	return ErrSourceUnavailable.Error() + ": " + e.Wrapped.Error()
}

// Unwrap exposes both the sentinel and the underlying OS error to errors.Is.
func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Wrapped}
}
