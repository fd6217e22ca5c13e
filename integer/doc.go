// Package integer provides Int32, a 32-bit signed integer built entirely from
// signed 16-bit operations.
//
// An Int32 is four 8-bit limbs held by value. Addition is limb-wise with carry
// propagation, subtraction adds the two's complement negation, and ordering
// subtracts and inspects the sign of the difference. Multiplication and
// division work on magnitudes split into 4-bit digits (see package limb), so
// no intermediate value ever leaves the signed 16-bit range:
//
//  | limb 3          | limb 2          | limb 1          | limb 0          |
//  |-----------------|-----------------|-----------------|-----------------|
//  | d7     | d6     | d5     | d4     | d3     | d2     | d1     | d0     |
//  |-----------------|-----------------|-----------------|-----------------|
//
// The product of two Int32 values is formed at double width (16 digits) and
// may be shifted right by whole limbs before it is stored (MulShift). The
// dividend of a division may be shifted left by whole limbs before dividing
// (ShiftDiv). These two forms implement fixed point scaling in package fixed.
//
// Failures
//
// There is no recoverable error path in the arithmetic. A product or quotient
// that does not fit in 32 bits panics with ErrOverflow, a zero divisor panics
// with ErrDivideByZero and the square root of a negative value panics with
// ErrDomain. Callers that prefer an error at a boundary of their choosing can
// defer Recover.
package integer
