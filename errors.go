package sequel

import "errors"

var (
	// ErrInvalidTemplate is returned when a template name is not registered.
	ErrInvalidTemplate = errors.New("sequel: invalid template")

	// ErrEmptyTemplate is returned when a custom template has no keywords.
	ErrEmptyTemplate = errors.New("sequel: empty template")

	// ErrInvalidLogLevel is returned for a log level other than dev or prod.
	ErrInvalidLogLevel = errors.New("sequel: invalid log level")
)
