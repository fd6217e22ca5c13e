package fixed

import (
	"fmt"
	"testing"

	"github.com/calebcase/fixray/integer"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type TC struct {
		s    string
		want float64
	}

	tcs := []TC{
		{"3", 3},
		{"-3", -3},
		{" 42 ", 42},
		{"-1/2", -0.5},
		{"3/2", 1.5},
		{"1/4", 0.25},
		{"0.5", 0.5},
		{"-0.5", -0.5},
		{"-2.25", -2.25},
		{"0.8", 0.8},
		{"0.05", 0.05},
		{"1.00001", 1},
		{"0.0000152587890625", 1.0 / (1 << 16)},
		{"0.99999999999", 1},
		{"32767.99998", 32767.99998},
		{"32766.999999", 32767},
		{"-32767.999999", -32768},
		{"-32768", -32768},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.s), func(t *testing.T) {
			n, err := Parse(tc.s)
			require.NoError(t, err)
			require.InDelta(t, tc.want, n.Float64(), 1.0/(1<<15))
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "x", "1/", "/2", "40000", "1.", "1.-5", "1.x", "32767.999999", "-32768.5"} {
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			_, err := Parse(s)
			require.Error(t, err)
			require.True(t, Error.Has(err))
		})
	}

	t.Run("divide by zero", func(t *testing.T) {
		_, err := Parse("1/0")
		require.Error(t, err)
		require.True(t, Error.Has(err))
		require.True(t, integer.ErrDivideByZero.Has(err))
	})
}

func TestText(t *testing.T) {
	for _, x := range []Number{From(3), FromFraction(-1, 2), FromFraction(3, 4)} {
		text, err := x.MarshalText()
		require.NoError(t, err)

		var y Number
		require.NoError(t, y.UnmarshalText(text))
		require.Equal(t, x, y)
	}

	for _, raw := range []int32{1, -1, 3, 52429, 65535, -98304, 205887, 1<<31 - 1, -1 << 31} {
		x := FromRaw(integer.FromInt32(raw))

		text, err := x.MarshalText()
		require.NoError(t, err)

		var y Number
		require.NoError(t, y.UnmarshalText(text), "%s", text)
		require.Equal(t, raw, y.Raw().Int32(), "%s", text)
	}

	var z Number
	require.Error(t, z.UnmarshalText([]byte("1/0")))
}

func TestMustParse(t *testing.T) {
	require.Equal(t, FromFraction(1, 2), MustParse("1/2"))
	require.Panics(t, func() {
		MustParse("nope")
	})
}
