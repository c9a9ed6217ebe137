package models

import (
	"errors"
)

var (
	ErrGeneral      = errors.New("an error occurred on the server during your request")
	ErrCorruptState = errors.New("the persisted state could not be read")
)
