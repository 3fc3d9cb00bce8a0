package tint

import "strings"

// Attr represents text attributes as a bitfield for efficient comparison and storage.
type Attr uint8

// AttrNone represents no text attributes.
const AttrNone Attr = 0

const (
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrHidden makes text invisible while still occupying space.
	AttrHidden
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

// attrNames maps each attribute bit to its display name, in rendering order.
var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrHidden, "hidden"},
	{AttrStrikethrough, "strikethrough"},
}

// Has returns true if all bits of a are set.
func (at Attr) Has(a Attr) bool {
	return at&a == a
}

// String returns the set attribute names joined by "|", or "none".
func (at Attr) String() string {
	if at == AttrNone {
		return "none"
	}
	var parts []string
	for _, an := range attrNames {
		if at.Has(an.attr) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// ColorPair holds an optional foreground and an optional background color.
// A default color in either channel means "leave that channel unchanged".
type ColorPair struct {
	Fg Color
	Bg Color
}

// IsDefault returns true when neither channel carries a color.
func (p ColorPair) IsDefault() bool {
	return p.Fg.IsDefault() && p.Bg.IsDefault()
}

// Equal returns true if both pairs are identical.
func (p ColorPair) Equal(other ColorPair) bool {
	return p.Fg.Equal(other.Fg) && p.Bg.Equal(other.Bg)
}

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling (no attributes, default colors).
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a new Style with the italic attribute set.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Blink returns a new Style with the blink attribute set.
func (s Style) Blink() Style {
	s.Attrs |= AttrBlink
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Hidden returns a new Style with the hidden attribute set.
func (s Style) Hidden() Style {
	s.Attrs |= AttrHidden
	return s
}

// Strikethrough returns a new Style with the strikethrough attribute set.
func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// Colors returns the style's color pair.
func (s Style) Colors() ColorPair {
	return ColorPair{Fg: s.Fg, Bg: s.Bg}
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// IsZero returns true if the style sets no colors and no attributes.
func (s Style) IsZero() bool {
	return s.Fg.IsDefault() && s.Bg.IsDefault() && s.Attrs == AttrNone
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
