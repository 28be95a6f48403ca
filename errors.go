package uuidprobe

import "errors"

var (
	// ErrMalformedInput indicates that the input text does not match the
	// canonical hyphen-grouped hexadecimal UUID pattern. No ParsedUUID is
	// produced when this error is returned.
	ErrMalformedInput = errors.New("uuidprobe: input does not match the canonical UUID form")
)
