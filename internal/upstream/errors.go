package upstream

import "errors"

// Error kinds. Returned errors wrap one of these; match with errors.Is.
var (
	ErrNetwork          = errors.New("network error")
	ErrParse            = errors.New("parse error")
	ErrNotFound         = errors.New("not found")
	ErrMissingField     = errors.New("missing field")
	ErrUnknownComponent = errors.New("unknown component")
)
