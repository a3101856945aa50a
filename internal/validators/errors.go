package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPlaylist   = errors.New("invalid playlist")
	ErrInvalidVersion    = errors.New("invalid version")
	ErrInvalidAttachment = errors.New("invalid attachment")
	ErrInvalidNote       = errors.New("invalid note")
)
