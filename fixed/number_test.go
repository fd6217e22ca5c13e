package fixed

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/fixray/integer"
	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"
)

func requirePanicClass(t *testing.T, class *errs.Class, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.True(t, class.Has(err), "unexpected error: %v", err)
	}()

	fn()
}

func TestConstants(t *testing.T) {
	require.Equal(t, int32(65536), Scale().Int32())
	require.Equal(t, int32(205887), Pi().Raw().Int32())
	require.InDelta(t, math.Pi, Pi().Float64(), 1e-5)

	// Copies handed out never alias the package values.
	p := Pi()
	p.Add(From(1))
	require.Equal(t, int32(205887), Pi().Raw().Int32())
}

func TestFrom(t *testing.T) {
	for _, i := range []int16{-32768, -30000, -256, -1, 0, 1, 255, 256, 30000, 32767} {
		x := From(i)
		require.Equal(t, float64(i), x.Float64())
		require.Equal(t, i, x.Int16())
	}
}

func TestAddSub(t *testing.T) {
	type TC struct {
		x, y int16
	}

	tcs := []TC{
		{4, 3},
		{100, 3},
		{100, 350},
		{10, 5000},
		{5000, 6000},
		{13082, 10082},
		{16000, 16000},
		{2, -2},
		{4, -2},
		{-4, -3},
		{-4, 1000},
		{1508, -1600},
		{0, -1},
		{-1, 0},
		{0, 0},
		{1, 0},
		{0, 1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d,%d", i, tc.x, tc.y), func(t *testing.T) {
			sum := From(tc.x)
			sum.Add(From(tc.y))
			require.Equal(t, float64(tc.x)+float64(tc.y), sum.Float64())

			diff := From(tc.x)
			diff.Sub(From(tc.y))
			require.Equal(t, float64(tc.x)-float64(tc.y), diff.Float64())
		})
	}
}

func TestMul(t *testing.T) {
	type TC struct {
		x, y int16
		Mark error
	}

	tcs := []TC{
		{4, 3, oops.New("unexpected")},
		{100, 3, oops.New("unexpected")},
		{40, 38, oops.New("unexpected")},
		{10, 3030, oops.New("unexpected")},
		{128, 255, oops.New("unexpected")},
		{2, -2, oops.New("unexpected")},
		{4, -2, oops.New("unexpected")},
		{-4, -3, oops.New("unexpected")},
		{5082, 0, oops.New("unexpected")},
		{0, 5082, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d*%d", i, tc.x, tc.y), func(t *testing.T) {
			x := From(tc.x)
			x.Mul(From(tc.y))
			require.Equal(t, float64(tc.x)*float64(tc.y), x.Float64(), tc.Mark)
		})
	}

	t.Run("fraction", func(t *testing.T) {
		x := FromFraction(1, 2)
		x.Mul(FromFraction(1, 4))
		require.Equal(t, 0.125, x.Float64())

		y := FromFraction(-3, 2)
		y.Mul(From(3))
		require.Equal(t, -4.5, y.Float64())
	})

	t.Run("overflow", func(t *testing.T) {
		requirePanicClass(t, &integer.ErrOverflow, func() {
			x := From(300)
			x.Mul(From(300))
		})
	})
}

func TestDiv(t *testing.T) {
	type TC struct {
		x, y int16
	}

	tcs := []TC{
		{3, 2},
		{4, 3},
		{100, 3},
		{100, 350},
		{10, 5000},
		{10098, 594},
		{10099, 594},
		{10097, 594},
		{5000, 5000},
		{32600, 32600},
		{2, -2},
		{4, -2},
		{-4, -3},
		{0, 5082},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d/%d", i, tc.x, tc.y), func(t *testing.T) {
			x := From(tc.x)
			x.Div(From(tc.y))
			require.InDelta(t, float64(tc.x)/float64(tc.y), x.Float64(), 0.01)
		})
	}

	t.Run("zero", func(t *testing.T) {
		requirePanicClass(t, &integer.ErrDivideByZero, func() {
			x := From(1)
			x.Div(From(0))
		})

		requirePanicClass(t, &integer.ErrDivideByZero, func() {
			x := From(0)
			x.Div(From(0))
		})
	})

	t.Run("overflow", func(t *testing.T) {
		requirePanicClass(t, &integer.ErrOverflow, func() {
			x := From(30000)
			x.Div(FromFraction(1, 100))
		})
	})
}

func TestSqrt(t *testing.T) {
	for _, x := range []Number{
		From(0),
		From(1),
		From(9),
		From(15),
		From(30000),
		From(25000),
		From(127),
		From(128),
		FromFraction(1, 100),
		FromFraction(1, 2),
		FromRaw(integer.From(1)),
		FromRaw(integer.FromInt32(math.MaxInt32)),
	} {
		t.Run(x.String(), func(t *testing.T) {
			want := math.Sqrt(x.Float64())

			r := x
			r.Sqrt()

			if want < 1 {
				require.InDelta(t, want, r.Float64(), 0.01)
			} else {
				require.InEpsilon(t, want, r.Float64(), 0.01)
			}
		})
	}

	t.Run("exact", func(t *testing.T) {
		x := From(9)
		x.Sqrt()
		require.Equal(t, 3.0, x.Float64())

		y := FromFraction(1, 4)
		y.Sqrt()
		require.Equal(t, 0.5, y.Float64())
	})

	t.Run("negative", func(t *testing.T) {
		requirePanicClass(t, &integer.ErrDomain, func() {
			x := From(-1)
			x.Sqrt()
		})
	})
}

func TestNegAbs(t *testing.T) {
	for _, i := range []int16{0, 1, -5, 30000, -30000, 256} {
		x := From(i)
		x.Neg()
		require.Equal(t, -float64(i), x.Float64())

		a := From(i)
		a.Abs()
		require.Equal(t, math.Abs(float64(i)), a.Float64())
	}
}

func TestPredicates(t *testing.T) {
	require.False(t, From(0).IsNegative())
	require.False(t, From(0).IsPositive())
	require.True(t, From(0).IsZero())

	for _, i := range []int16{-1, -2, -30000} {
		require.True(t, From(i).IsNegative())
		require.False(t, From(i).IsPositive())
	}

	for _, i := range []int16{1, 2, 30000} {
		require.False(t, From(i).IsNegative())
		require.True(t, From(i).IsPositive())
	}

	require.True(t, FromFraction(-1, 2).Less(From(0)))
	require.Equal(t, 1, From(1).Cmp(FromFraction(1, 2)))
	require.Equal(t, 0, FromFraction(2, 4).Cmp(FromFraction(1, 2)))
}

func TestTan(t *testing.T) {
	for _, f := range []float64{0, 0.25, -0.25, 0.785, 1.2, -1.2} {
		x := FromFloat64(f)
		x.Tan()
		require.InDelta(t, math.Tan(f), x.Float64(), 0.001)
	}

	t.Run("fov", func(t *testing.T) {
		x := From(90)
		x.Mul(Pi())
		x.Div(From(180))
		x.Div(From(2))
		x.Tan()
		require.InDelta(t, 1.0, x.Float64(), 0.001)
	})
}

func TestFromFloat64(t *testing.T) {
	for _, f := range []float64{0, 0.5, -0.5, 1.25, -1.25, 3.14159, 32767.5, -32768} {
		require.InDelta(t, f, FromFloat64(f).Float64(), 1.0/(1<<15))
	}

	t.Run("resolution", func(t *testing.T) {
		for _, f := range []float64{1.0 / (1 << 16), 3.0 / (1 << 16), -5.0 / (1 << 16), 0.7, -2.3} {
			raw := FromFloat64(f).Raw().Int32()
			require.Zero(t, raw&1, "%v -> %d", f, raw)
		}

		require.True(t, FromFloat64(1.0/(1<<16)).IsZero())
		require.Equal(t, int32(2), FromFloat64(3.0/(1<<16)).Raw().Int32())
	})

	for _, f := range []float64{32768, -32768.5, math.NaN(), math.Inf(1)} {
		requirePanicClass(t, &integer.ErrDomain, func() {
			FromFloat64(f)
		})
	}
}

func TestConversions(t *testing.T) {
	type TC struct {
		x      Number
		int16  int16
		frac16 int16
		floor  float64
	}

	tcs := []TC{
		{From(0), 0, 0, 0},
		{From(7), 7, 0, 7},
		{From(-7), -7, 0, -7},
		{FromFraction(1, 2), 0, 1 << 14, 0},
		{FromFraction(3, 2), 1, 1 << 14, 1},
		{FromFraction(-3, 2), -1, 1 << 14, -2},
		{FromFraction(-1, 4), 0, 1 << 13, -1},
		{FromFraction(3, 4), 0, 3 << 13, 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.x), func(t *testing.T) {
			require.Equal(t, tc.int16, tc.x.Int16())
			require.Equal(t, tc.frac16, tc.x.Frac16())
			require.Equal(t, tc.floor, tc.x.Floor().Float64())
		})
	}
}

func TestFormat(t *testing.T) {
	x := FromFraction(-3, 2)

	require.Equal(t, "-1.5", x.String())
	require.Equal(t, "-1.5", fmt.Sprint(x))
	require.Equal(t, "-1.50", fmt.Sprintf("%.2f", x))
	require.Equal(t, "Number[-1.5 (-98304)]", fmt.Sprintf("%+v", x))
}

func TestMarshal(t *testing.T) {
	for _, x := range []Number{From(0), From(1), FromFraction(-1, 2), Pi()} {
		data, err := x.MarshalBinary()
		require.NoError(t, err)

		var y Number
		require.NoError(t, y.UnmarshalBinary(data))
		require.Equal(t, x, y)
	}

	// +1.0 is 2^16: magnitude shifted left with a clear sign bit.
	data, err := From(1).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0b0000_0010, 0, 0}, data)
}
