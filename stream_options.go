package tint

// StreamOption is a functional option for configuring a Stream at
// construction.
type StreamOption func(*Stream)

// WithForeground sets the stream's initial foreground color.
func WithForeground(c Color) StreamOption {
	return func(s *Stream) {
		s.style.Fg = c
	}
}

// WithBackground sets the stream's initial background color.
func WithBackground(c Color) StreamOption {
	return func(s *Stream) {
		s.style.Bg = c
	}
}

// WithAttrs sets the stream's initial text attributes.
func WithAttrs(a Attr) StreamOption {
	return func(s *Stream) {
		s.style.Attrs = a
	}
}

// WithStyle sets the stream's full initial style, replacing both colors and
// attributes.
func WithStyle(st Style) StreamOption {
	return func(s *Stream) {
		s.style = st
	}
}

// WithPolicy sets the styling policy. Default is PolicyAuto.
func WithPolicy(p Policy) StreamOption {
	return func(s *Stream) {
		s.policy = p
	}
}

// WithNoColor pins the color suppression signal instead of reading NO_COLOR
// and CLICOLOR from the environment. Tests use this to make rendering
// decisions deterministic.
func WithNoColor(noColor bool) StreamOption {
	return func(s *Stream) {
		s.noColor = noColor
	}
}
