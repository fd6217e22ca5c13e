package control

import (
	"github.com/zeebo/errs"
)

// Error is the class of control block errors.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a block is read as a type it is not.
var ErrInvalidOperation = Error.New("invalid operation")
