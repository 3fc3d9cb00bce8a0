package tint

import "strconv"

// attrCodes maps attribute bits to their SGR parameter codes, in the fixed
// order they are emitted.
var attrCodes = []struct {
	attr Attr
	code int
}{
	{AttrBold, 1},
	{AttrDim, 2},
	{AttrItalic, 3},
	{AttrUnderline, 4},
	{AttrBlink, 5},
	{AttrReverse, 7},
	{AttrHidden, 8},
	{AttrStrikethrough, 9},
}

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// String returns the built sequence as a string.
func (e *escBuilder) String() string {
	return string(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// SetStyle appends the SGR sequence selecting the given style. Parameters
// are joined by ';' in a fixed order: foreground as 38;5;<index>, background
// as 48;5;<index>, then one numeric code per attribute bit. Indexed colors
// always use the 38;5/48;5 form, including the sixteen named colors.
// A zero style degenerates to the universal reset sequence ESC[0m.
func (e *escBuilder) SetStyle(s Style) {
	e.writeCSI()
	start := len(e.buf)

	if !s.Fg.IsDefault() {
		e.buf = append(e.buf, '3', '8', ';', '5', ';')
		e.writeInt(int(s.Fg.Index()))
	}
	if !s.Bg.IsDefault() {
		if len(e.buf) > start {
			e.buf = append(e.buf, ';')
		}
		e.buf = append(e.buf, '4', '8', ';', '5', ';')
		e.writeInt(int(s.Bg.Index()))
	}
	for _, ac := range attrCodes {
		if s.Attrs&ac.attr != 0 {
			if len(e.buf) > start {
				e.buf = append(e.buf, ';')
			}
			e.writeInt(ac.code)
		}
	}

	if len(e.buf) == start {
		e.buf = append(e.buf, '0')
	}
	e.buf = append(e.buf, 'm')
}

// ResetStyle appends the universal reset sequence, returning all text
// attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// WriteString appends a string to the buffer verbatim.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
