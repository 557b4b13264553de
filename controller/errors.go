package controller

import "errors"

// Sentinel errors for controller package.
var (
	// ErrInvalidRange is returned when an edit is outside the text.
	ErrInvalidRange = errors.New("controller: invalid range")

	// ErrLayoutFailed is returned when the text cannot be laid out in the box.
	ErrLayoutFailed = errors.New("controller: layout failed")
)
