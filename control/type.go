package control

// Type is a control block type: the prefix bits that identify it and the
// mask of the bits left for data or size.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// String returns the abbreviated type name.
func (t Type) String() string {
	if t.Abbr == "" {
		return "?"
	}

	return t.Abbr
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Control Block Types
var (
	Unknown      = Type{}
	Data         = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize     = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1        = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2        = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	DataSizeSize = Type{0b_0000_1000, 0b_0000_0111, "dzz"}
	Unbounded    = Type{0b_0000_0110, 0b_0000_0000, "cu"}
	End          = Type{0b_0000_0100, 0b_0000_0000, "ce"}
	SkipSize     = Type{0b_0000_0010, 0b_0000_0001, "sz"}
	Empty        = Type{0b_0000_0001, 0b_0000_0000, "e"}
	Null         = Type{0b_0000_0000, 0b_0000_0000, "n"}

	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
		Unbounded,
		End,
		SkipSize,
		Empty,
		Null,
	}
)
