package core

import "errors"

var (
	// ErrGridOverflow is returned when a grid offset would leave the int range.
	ErrGridOverflow = errors.New("columns: grid position overflow")

	// ErrPixelOverflow is returned when pixel addition would wrap a uint32.
	ErrPixelOverflow = errors.New("columns: pixel position overflow")
)
