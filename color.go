package tint

import "strconv"

// ColorKind distinguishes between color representations.
type ColorKind uint8

const (
	// ColorDefault represents the destination's default color (no color set).
	// A default channel is left untouched when styling is applied.
	ColorDefault ColorKind = iota
	// ColorBasic represents one of the eight standard palette hues (indices 0-7).
	ColorBasic
	// ColorBright represents the high-intensity variant of a basic hue (indices 8-15).
	ColorBright
	// ColorExtended represents a raw palette index, covering entries outside
	// the sixteen named colors.
	ColorExtended
)

// Color represents an indexed terminal color. The zero value is the
// destination's default color, meaning "leave this channel unchanged".
type Color struct {
	kind ColorKind
	// Palette index: 0-7 for basic, 8-15 for bright, 0-255 for extended.
	index uint8
}

// DefaultColor returns a Color representing the destination's default color.
func DefaultColor() Color {
	return Color{kind: ColorDefault}
}

// ExtendedColor returns a raw palette index color. Extended colors carry
// their index verbatim and are unaffected by Intensify and Soften, even for
// indices that overlap the named sixteen.
func ExtendedColor(index uint8) Color {
	return Color{kind: ColorExtended, index: index}
}

// ColorFromIndex maps a palette index to a Color: 0-7 yield the basic hues,
// 8-15 their bright variants, and 16-255 extended index colors. It is total
// and never fails.
func ColorFromIndex(n uint8) Color {
	switch {
	case n < 8:
		return Color{kind: ColorBasic, index: n}
	case n < 16:
		return Color{kind: ColorBright, index: n}
	default:
		return Color{kind: ColorExtended, index: n}
	}
}

// Kind returns the ColorKind of this color.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsDefault returns true if this is the destination's default color.
func (c Color) IsDefault() bool {
	return c.kind == ColorDefault
}

// Index returns the palette index of the color: basic hues map to 0-7 in
// enumeration order, bright variants to 8-15 in the same order, and extended
// colors return their stored index unchanged.
// Panics if the color is the default color, which has no palette index.
func (c Color) Index() uint8 {
	if c.kind == ColorDefault {
		panic("Color.Index() called on default color")
	}
	return c.index
}

// Intensify returns the bright counterpart of a basic hue. Bright and
// extended colors are returned unchanged, as is the default color.
func (c Color) Intensify() Color {
	if c.kind == ColorBasic {
		return Color{kind: ColorBright, index: c.index + 8}
	}
	return c
}

// Soften returns the basic counterpart of a bright color. Basic and extended
// colors are returned unchanged, as is the default color. Soften is the
// inverse of Intensify on the sixteen named colors.
func (c Color) Soften() Color {
	if c.kind == ColorBright {
		return Color{kind: ColorBasic, index: c.index - 8}
	}
	return c
}

// Equal returns true if both colors are identical. Colors of different kinds
// are never equal, so ExtendedColor(1) is distinct from Red even though both
// carry palette index 1.
func (c Color) Equal(other Color) bool {
	if c.kind != other.kind {
		return false
	}
	if c.kind == ColorDefault {
		return true
	}
	return c.index == other.index
}

// colorNames holds the display names for the sixteen indexed colors in
// palette order.
var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c.kind {
	case ColorDefault:
		return "default"
	case ColorBasic, ColorBright:
		return colorNames[c.index]
	default:
		return "extended(" + strconv.Itoa(int(c.index)) + ")"
	}
}

// Standard colors (normal intensity).
var (
	Black   = Color{kind: ColorBasic, index: 0}
	Red     = Color{kind: ColorBasic, index: 1}
	Green   = Color{kind: ColorBasic, index: 2}
	Yellow  = Color{kind: ColorBasic, index: 3}
	Blue    = Color{kind: ColorBasic, index: 4}
	Magenta = Color{kind: ColorBasic, index: 5}
	Cyan    = Color{kind: ColorBasic, index: 6}
	White   = Color{kind: ColorBasic, index: 7}
)

// Bright colors (high-intensity variants).
var (
	BrightBlack   = Color{kind: ColorBright, index: 8}
	BrightRed     = Color{kind: ColorBright, index: 9}
	BrightGreen   = Color{kind: ColorBright, index: 10}
	BrightYellow  = Color{kind: ColorBright, index: 11}
	BrightBlue    = Color{kind: ColorBright, index: 12}
	BrightMagenta = Color{kind: ColorBright, index: 13}
	BrightCyan    = Color{kind: ColorBright, index: 14}
	BrightWhite   = Color{kind: ColorBright, index: 15}
)
