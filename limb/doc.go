// Package limb provides the primitive layer of the fixray numeric core: limb
// vectors and the shift helpers needed to work with them on a host that only
// offers signed 16-bit integers.
//
// The host model has no unsigned types, no wide multiply, no wide division and
// no arithmetic right shift of negative values. Every operation in this
// package is written against that model: limbs are stored in int16 and every
// intermediate value is kept inside the signed 16-bit range.
//
// Vectors
//
// A vector is a fixed length sequence of limbs, least significant first. Each
// limb holds a value in [0, radix-1]. The vector as a whole is a two's
// complement integer; the sign is the top bit of the most significant limb and
// is never stored separately. A 32-bit value in 8-bit limbs:
//
//  | limb 0      | limb 1      | limb 2      | limb 3      |
//  |-------------|-------------|-------------|-------------|
//  | bits  0..7  | bits  8..15 | bits 16..23 | bits 24..31 |
//  |-------------|-------------|-------------|-------------|
//  |                                         | S . . . . . | S = sign bit
//
// Digits
//
// Multiplication and division need products of two limbs. With 8-bit limbs
// the product 255 * 255 does not fit a signed 16-bit integer, so the kernels
// work on digits split out of the limbs (Split) and join them back afterwards
// (Join). Any digit width of 1 to 7 bits is safe; the reference layout uses
// 4-bit digits:
//
//  | limb 0                | limb 1                |
//  |-----------------------|-----------------------|
//  | digit 0   | digit 1   | digit 2   | digit 3   |
//  | bits 0..3 | bits 4..7 | bits 0..3 | bits 4..7 |
//
// Mul is schoolbook long multiplication. Div is Knuth's Algorithm D
// (normalized long division with trial quotient digits). Both operate on
// non-negative magnitudes; callers apply signs.
//
// Failures
//
// A limb outside [0, radix-1] is an implementation bug, not a runtime
// condition, and panics with an ErrInvariant error. Dividing by a zero vector
// panics with an ErrDivideByZero error.
package limb
