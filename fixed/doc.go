// Package fixed provides Number, a signed Q16.16 fixed point number built on
// integer.Int32.
//
// The equation for a number is:
//
//  number = raw / 2^16
//
// Where raw is an Int32 and the scale factor 2^16 is exactly two limbs. The
// two low limbs hold the fraction and the two high limbs hold the integer
// part:
//
//  | limb 3 | limb 2 | limb 1 | limb 0 |
//  |-----------------|-----------------|
//  | integer part    | fraction        |
//  |-----------------|-----------------|
//
// For example:
//
//  1.5  = 98304 / 2^16   (0x0001_8000)
//  -0.5 = -32768 / 2^16  (0xFFFF_8000)
//
// Numbers range over [-32768, 32768) with a resolution of 2^-16.
//
// Scaling
//
// Construction from an integer shifts it left by two limbs. Multiplication
// forms the double width product and shifts it right by two limbs (truncating
// toward zero). Division shifts the dividend left by two limbs before
// dividing. Both keep every intermediate value inside the 16-bit host model
// of package limb.
//
// Failures
//
// Arithmetic failures panic with the classes of package integer. A product
// or quotient that does not fit panics with integer.ErrOverflow, division by
// zero panics with integer.ErrDivideByZero and the square root of a negative
// number panics with integer.ErrDomain.
//
// Tan is not built from the constrained arithmetic. It converts to a host
// float, calls math.Tan and quantizes the result, so its output is only as
// portable as the host float implementation.
package fixed
