package fixed

import (
	"strconv"
	"strings"

	"github.com/calebcase/fixray/integer"
)

// maxFracDigits is the number of decimal places Parse reads; 2 * 10^9 still
// fits an Int32.
const maxFracDigits = 9

// Parse reads a number written as an integer ("3"), a fraction ("-1/2") or a
// decimal ("0.8"). A decimal is rounded to the nearest Number; places past
// the ninth are ignored. A decimal that rounds outside [-32768, 32768) is an
// error. The text form of every Number parses back exactly.
func Parse(s string) (n Number, err error) {
	defer Error.WrapP(&err)
	defer integer.Recover(&err)

	s = strings.TrimSpace(s)

	if num, den, ok := strings.Cut(s, "/"); ok {
		a, err := parseInt16(num)
		if err != nil {
			return n, err
		}

		b, err := parseInt16(den)
		if err != nil {
			return n, err
		}

		return FromFraction(a, b), nil
	}

	ip, fp, ok := strings.Cut(s, ".")

	i, err := parseInt16(ip)
	if err != nil {
		return n, err
	}

	n = From(i)

	if !ok {
		return n, nil
	}

	if fp == "" {
		return n, Error.New("invalid fraction: %q", s)
	}

	if len(fp) > maxFracDigits {
		fp = fp[:maxFracDigits]
	}

	// frac = round(digits * 2^16 / 10^k), computed as
	// (floor(2 * digits * 2^16 / 10^k) + 1) / 2.
	digits, pow := integer.Int32{}, integer.From(1)
	ten := integer.From(10)

	for _, c := range []byte(fp) {
		if c < '0' || c > '9' {
			return n, Error.New("invalid fraction: %q", s)
		}

		digits.Mul(ten)
		digits.Add(integer.From(int16(c - '0')))
		pow.Mul(ten)
	}

	digits.Add(digits)
	digits.ShiftDiv(FracLimbs, pow)
	digits.Add(integer.From(1))
	digits.Div(integer.From(2))

	frac := FromRaw(digits)

	neg := strings.HasPrefix(ip, "-")
	if neg {
		frac.Neg()
	}

	sum := n
	sum.Add(frac)

	// A fraction that rounds up to 1 can carry past the end of the range.
	if (neg && sum.Cmp(n) > 0) || (!neg && sum.Less(n)) {
		return Number{}, Error.New("out of range: %q", s)
	}

	return sum, nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// MarshalText implements encoding.TextMarshaler.
func (x Number) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (x *Number) UnmarshalText(text []byte) (err error) {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = n

	return nil
}

func parseInt16(s string) (int16, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}

	return int16(v), nil
}
