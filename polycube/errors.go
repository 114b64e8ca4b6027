package polycube

import "errors"

// ErrInvalidSize indicates a requested polycube size below 1.
var ErrInvalidSize = errors.New("polycube: size must be a positive integer")
