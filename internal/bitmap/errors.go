package bitmap

import "errors"

var (
	ErrInvalidColour = errors.New("colour value must be a single capital letter [A-Z]")
	ErrOutOfBounds   = errors.New("coordinates outside the image")
	ErrCellNotFound  = errors.New("pixel not found")
	ErrInvalidRange  = errors.New("invalid range")
)
