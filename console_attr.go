package tint

// ConsoleAttr is a character-mode console attribute word: the low nibble
// encodes the foreground, the next nibble the background with the same bit
// layout shifted by four. The layout matches the native console API, where
// the current word is global per console rather than per handle.
type ConsoleAttr uint16

// Channel bits within the foreground nibble. These mirror the native
// console FOREGROUND_* constants.
const (
	consoleBlue      ConsoleAttr = 0x0001
	consoleGreen     ConsoleAttr = 0x0002
	consoleRed       ConsoleAttr = 0x0004
	consoleIntensity ConsoleAttr = 0x0008

	consoleFgMask ConsoleAttr = 0x000f
	consoleBgMask ConsoleAttr = 0x00f0

	// consoleReverse swaps foreground and background (COMMON_LVB_REVERSE_VIDEO).
	consoleReverse ConsoleAttr = 0x4000
)

// defaultConsoleAttr is plain light gray on black, the console default
// assumed whenever the destination's original state cannot be queried.
const defaultConsoleAttr = consoleRed | consoleGreen | consoleBlue

// consoleNibble returns the 4-bit console encoding of c and whether c is
// representable on a character-mode destination. The ANSI palette index
// encodes red, green and blue additively in its low three bits with red
// lowest; the console nibble uses the same channels with blue lowest.
// Extended indices past the named sixteen have no console representation.
func consoleNibble(c Color) (ConsoleAttr, bool) {
	if c.IsDefault() || c.index >= 16 {
		return 0, false
	}
	var n ConsoleAttr
	if c.index&1 != 0 {
		n |= consoleRed
	}
	if c.index&2 != 0 {
		n |= consoleGreen
	}
	if c.index&4 != 0 {
		n |= consoleBlue
	}
	if c.index&8 != 0 {
		n |= consoleIntensity
	}
	return n, true
}

// consoleAttr translates a pending style into a console attribute word,
// starting from prev for any channel that is left unset. ok is false when
// neither color channel is set; the native call is skipped entirely in that
// case, so style-only changes never reach a character-mode destination.
// Attribute bits other than reverse have no native representation and are
// dropped here.
func consoleAttr(s Style, prev ConsoleAttr) (word ConsoleAttr, ok bool) {
	if s.Fg.IsDefault() && s.Bg.IsDefault() {
		return prev, false
	}
	word = prev
	if n, representable := consoleNibble(s.Fg); representable {
		word = word&^consoleFgMask | n
	}
	if n, representable := consoleNibble(s.Bg); representable {
		word = word&^consoleBgMask | n<<4
	}
	if s.Attrs&AttrReverse != 0 {
		word |= consoleReverse
	} else {
		word &^= consoleReverse
	}
	return word, true
}
