package simulations

import "errors"

var (
	ErrNotFound          = errors.New("simulation not found")
	ErrUnknownCalculator = errors.New("unknown calculator name")
)
