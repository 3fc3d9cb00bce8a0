package tint

// editKind distinguishes which styling channel an Edit touches.
type editKind uint8

const (
	editForeground editKind = iota
	editBackground
	editAttributes
)

// Edit is a single styling change within a Segment. Edits apply in order
// onto an initially unstyled working style, so a later edit to the same
// channel overrides an earlier one.
type Edit struct {
	kind  editKind
	color Color
	attrs Attr
}

// Foreground returns an edit that sets the foreground color.
func Foreground(c Color) Edit {
	return Edit{kind: editForeground, color: c}
}

// Background returns an edit that sets the background color.
func Background(c Color) Edit {
	return Edit{kind: editBackground, color: c}
}

// Attributes returns an edit that replaces the attribute set.
func Attributes(a Attr) Edit {
	return Edit{kind: editAttributes, attrs: a}
}

// apply returns s with the edit applied.
func (e Edit) apply(s Style) Style {
	switch e.kind {
	case editForeground:
		s.Fg = e.color
	case editBackground:
		s.Bg = e.color
	case editAttributes:
		s.Attrs = e.attrs
	}
	return s
}

// Segment pairs a run of text with the styling edits to apply before it.
// Segment styling is not cumulative: each segment starts from an unstyled
// state, never from the previous segment's appearance.
type Segment struct {
	Text  string
	Edits []Edit
}

// Plain returns an unstyled segment.
func Plain(text string) Segment {
	return Segment{Text: text}
}

// Styled returns a segment carrying the given edits.
func Styled(text string, edits ...Edit) Segment {
	return Segment{Text: text, Edits: edits}
}

// style computes the segment's effective style from scratch.
func (s Segment) style() Style {
	var st Style
	for _, e := range s.Edits {
		st = e.apply(st)
	}
	return st
}
