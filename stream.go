package tint

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-tint/internal/debug"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Stream styles an append-only text destination. It tracks the colors and
// attributes the caller wants in effect, lazily applies them before the next
// write, and restores the destination's original appearance on Clear.
//
// A Stream is not safe for concurrent use without external synchronization.
// The underlying device may also be shared with other writers: on
// character-mode consoles the attribute word is global per console, so
// styling applied here is visible to every writer until cleared.
type Stream struct {
	dest   Destination
	policy Policy

	// Pending style, applied to the destination before the next write.
	style Style
	dirty bool

	// Suppression signal, read from the environment once at construction.
	noColor bool

	// Console destinations only: the attribute word captured at
	// construction for restoration, and the word last applied through this
	// stream, which supplies the carry-over value for unset channels.
	saved ConsoleAttr
	last  ConsoleAttr

	esc *escBuilder
	log zerolog.Logger
}

// NewStream binds a styled stream to dest. The environment's suppression
// signal (NO_COLOR, CLICOLOR) is read here, once per stream; console
// destinations additionally have their current attribute word captured here
// for later restoration, falling back to plain light gray on black when the
// query fails. An initial style given via options marks the stream dirty so
// the first write applies it.
func NewStream(dest Destination, opts ...StreamOption) *Stream {
	s := &Stream{
		dest:    dest,
		policy:  PolicyAuto,
		noColor: termenv.EnvNoColor(),
		saved:   defaultConsoleAttr,
		last:    defaultConsoleAttr,
		esc:     newEscBuilder(64),
		log:     debug.Logger("stream"),
	}

	for _, opt := range opts {
		opt(s)
	}

	if dest.Kind() == KindConsole {
		if attr, err := dest.Attributes(); err == nil {
			s.saved = attr
			s.last = attr
		}
	}

	s.dirty = !s.style.IsZero()

	s.log.Trace().
		Stringer("kind", dest.Kind()).
		Bool("interactive", dest.Interactive()).
		Stringer("policy", s.policy).
		Bool("noColor", s.noColor).
		Bool("dirty", s.dirty).
		Msg("stream constructed")

	return s
}

// Stdout returns a styled stream bound to the process standard output.
func Stdout(opts ...StreamOption) *Stream {
	return NewStream(NewDestination(os.Stdout), opts...)
}

// Stderr returns a styled stream bound to the process standard error.
func Stderr(opts ...StreamOption) *Stream {
	return NewStream(NewDestination(os.Stderr), opts...)
}

// Destination returns the destination the stream writes to.
func (s *Stream) Destination() Destination {
	return s.dest
}

// Colors returns the pending color pair.
func (s *Stream) Colors() ColorPair {
	return s.style.Colors()
}

// SetColors replaces the pending color pair.
func (s *Stream) SetColors(p ColorPair) {
	s.style.Fg = p.Fg
	s.style.Bg = p.Bg
	s.markDirty()
}

// SetForeground replaces the pending foreground color.
func (s *Stream) SetForeground(c Color) {
	s.style.Fg = c
	s.markDirty()
}

// SetBackground replaces the pending background color.
func (s *Stream) SetBackground(c Color) {
	s.style.Bg = c
	s.markDirty()
}

// Attrs returns the pending text attributes.
func (s *Stream) Attrs() Attr {
	return s.style.Attrs
}

// SetAttrs replaces the pending text attributes.
func (s *Stream) SetAttrs(a Attr) {
	s.style.Attrs = a
	s.markDirty()
}

// CurrentStyle returns the full pending style.
func (s *Stream) CurrentStyle() Style {
	return s.style
}

// SetStyle replaces the full pending style, colors and attributes both.
func (s *Stream) SetStyle(st Style) {
	s.style = st
	s.markDirty()
}

// Policy returns the styling policy.
func (s *Stream) Policy() Policy {
	return s.policy
}

// SetPolicy replaces the styling policy. The stream is marked dirty so the
// change takes effect on the next write even when the pending style was
// already flushed under the old policy.
func (s *Stream) SetPolicy(p Policy) {
	s.policy = p
	s.markDirty()
	s.log.Trace().Stringer("policy", p).Msg("policy changed")
}

// markDirty records that pending state must be applied before the next
// write. Every mutation marks dirty unconditionally, equal values included:
// a caller re-asserting the current style after another process touched the
// shared destination must get a fresh apply.
func (s *Stream) markDirty() {
	s.dirty = true
}

// Print writes text verbatim, applying any pending style change first.
// Styling is best-effort: failures degrade to plain text and are never
// surfaced, and under a non-rendering policy the text is still written,
// unstyled. The applied style stays in effect after the text until Clear.
func (s *Stream) Print(text string) {
	s.write(text)
}

// Printf formats according to fmt.Sprintf and writes the result like Print.
func (s *Stream) Printf(format string, args ...any) {
	s.write(fmt.Sprintf(format, args...))
}

// Println writes text followed by a newline like Print.
func (s *Stream) Println(text string) {
	s.write(text + "\n")
}

// write flushes the pending style if dirty, then writes text. On escape
// destinations the style prefix and the text go out in a single write, so
// every styled write is self-contained under interleaving with other
// writers.
func (s *Stream) write(text string) {
	if s.dirty {
		switch s.dest.Kind() {
		case KindEscape:
			if s.policy.renders(s.dest.Interactive(), s.noColor) {
				s.esc.Reset()
				s.esc.SetStyle(s.style)
				text = s.esc.String() + text
			}
		case KindConsole:
			if s.policy.rendersConsole(s.noColor) {
				s.applyConsole()
			}
		}
		// Dirty clears even when rendering was suppressed, so a suppressed
		// style is not re-attempted on every subsequent write.
		s.dirty = false
	}

	if _, err := s.dest.WriteString(text); err != nil {
		s.log.Trace().Err(err).Msg("destination write failed")
	}
}

// applyConsole translates the pending style into an attribute word and
// applies it. When neither color channel is set there is nothing to
// translate and the native call is skipped.
func (s *Stream) applyConsole() {
	word, ok := consoleAttr(s.style, s.last)
	if !ok {
		return
	}
	if err := s.dest.SetAttributes(word); err != nil {
		s.log.Trace().Err(err).Msg("console attribute apply failed")
		return
	}
	s.last = word
}

// PrintSegments writes a sequence of styled segments and leaves the
// destination fully cleared. Each segment's style is computed from scratch
// from its edits, never layered on the previous segment's appearance. A
// segment whose computed attribute set is empty clears first so that
// nothing bleeds into it; the check is on attributes only, so a segment
// with colors but no attributes still clears first. After the last segment
// the stream clears unconditionally: unlike Print, the batched write never
// leaves styling open.
func (s *Stream) PrintSegments(segs ...Segment) {
	for _, seg := range segs {
		st := seg.style()
		if st.Attrs == AttrNone {
			s.Clear()
		}
		s.SetColors(ColorPair{Fg: st.Fg, Bg: st.Bg})
		s.SetAttrs(st.Attrs)
		s.write(seg.Text)
	}
	s.Clear()
}

// Clear restores the destination toward its original appearance and resets
// all pending state. Escape destinations get the universal reset sequence
// when styling would currently render. Console destinations get their
// original attribute word back unconditionally, independent of policy:
// restoration must not be skippable, or a styled word would leak into the
// console session.
func (s *Stream) Clear() {
	switch s.dest.Kind() {
	case KindEscape:
		if s.policy.renders(s.dest.Interactive(), s.noColor) {
			s.esc.Reset()
			s.esc.ResetStyle()
			if _, err := s.dest.WriteString(s.esc.String()); err != nil {
				s.log.Trace().Err(err).Msg("reset write failed")
			}
		}
	case KindConsole:
		if err := s.dest.SetAttributes(s.saved); err != nil {
			s.log.Trace().Err(err).Msg("console restore failed")
		} else {
			s.last = s.saved
		}
	}

	s.style = Style{}
	s.dirty = false
}
