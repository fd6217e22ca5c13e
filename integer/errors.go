package integer

import (
	"github.com/zeebo/errs"
)

// Error is the class of integer errors that are not arithmetic failures.
var Error = errs.Class("integer")

// Arithmetic failure classes. Values of these classes are raised by panic.
var (
	ErrOverflow     = errs.Class("overflow")
	ErrDivideByZero = errs.Class("divide by zero")
	ErrDomain       = errs.Class("domain")
)

// Recover stops a panic raised by an arithmetic failure and stores it in err.
// It must be deferred directly:
//
//  defer integer.Recover(&err)
//
// Any other panic, including limb invariant violations, is re-raised.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if e, ok := r.(error); ok && IsArithmetic(e) {
		*err = e

		return
	}

	panic(r)
}

// IsArithmetic reports whether err is an overflow, divide by zero or domain
// failure.
func IsArithmetic(err error) bool {
	return ErrOverflow.Has(err) || ErrDivideByZero.Has(err) || ErrDomain.Has(err)
}
