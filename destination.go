package tint

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotConsole is returned by attribute operations on destinations that are
// not character-mode consoles.
var ErrNotConsole = errors.New("destination is not a character-mode console")

// DestinationKind identifies how a destination accepts styling.
type DestinationKind uint8

const (
	// KindEscape marks a destination styled with ANSI escape sequences.
	// This covers terminal emulators, pipes, files, and modern consoles
	// with virtual terminal processing.
	KindEscape DestinationKind = iota
	// KindConsole marks a legacy character-mode console styled through
	// per-console attribute words via the native console API.
	KindConsole
)

// String returns a human-readable name for the kind.
func (k DestinationKind) String() string {
	switch k {
	case KindEscape:
		return "escape"
	case KindConsole:
		return "console"
	}
	return "unknown"
}

// Destination is the writable endpoint of a Stream. Implementations handle
// real files, character-mode consoles, or mocks for testing.
type Destination interface {
	// Kind reports how the destination accepts styling.
	Kind() DestinationKind

	// Interactive reports whether the destination is attached to an
	// interactive terminal rather than a pipe or file.
	Interactive() bool

	// WriteString writes text verbatim, without interpretation.
	WriteString(s string) (int, error)

	// Attributes returns the destination's current attribute word.
	// Returns ErrNotConsole for destinations that are not KindConsole.
	Attributes() (ConsoleAttr, error)

	// SetAttributes replaces the destination's attribute word.
	// Returns ErrNotConsole for destinations that are not KindConsole.
	SetAttributes(ConsoleAttr) error
}

// StreamDestination adapts an io.Writer into a Destination. When the writer
// is an *os.File the underlying descriptor is probed once at construction for
// interactivity and console kind; any other writer is treated as a plain
// non-interactive escape destination.
type StreamDestination struct {
	w           io.Writer
	fd          uintptr
	hasFd       bool
	kind        DestinationKind
	interactive bool
}

// Ensure StreamDestination implements Destination.
var _ Destination = (*StreamDestination)(nil)

// NewDestination wraps w as a styling destination. The probe happens here,
// not per write: kind and interactivity are fixed for the destination's
// lifetime even if the descriptor is redirected afterwards.
func NewDestination(w io.Writer) *StreamDestination {
	d := &StreamDestination{w: w, kind: KindEscape}
	f, ok := w.(*os.File)
	if !ok {
		return d
	}
	d.fd = f.Fd()
	d.hasFd = true
	d.interactive = isatty.IsTerminal(d.fd) || isatty.IsCygwinTerminal(d.fd)
	d.kind = probeConsoleKind(d.fd)
	return d
}

// Kind reports how the destination accepts styling.
func (d *StreamDestination) Kind() DestinationKind {
	return d.kind
}

// Interactive reports whether the destination is an interactive terminal.
func (d *StreamDestination) Interactive() bool {
	return d.interactive
}

// WriteString writes s to the underlying writer.
func (d *StreamDestination) WriteString(s string) (int, error) {
	return io.WriteString(d.w, s)
}

// Attributes returns the console's current attribute word.
func (d *StreamDestination) Attributes() (ConsoleAttr, error) {
	if d.kind != KindConsole || !d.hasFd {
		return 0, ErrNotConsole
	}
	return consoleAttributes(d.fd)
}

// SetAttributes replaces the console's attribute word.
func (d *StreamDestination) SetAttributes(attr ConsoleAttr) error {
	if d.kind != KindConsole || !d.hasFd {
		return ErrNotConsole
	}
	return setConsoleAttributes(d.fd, attr)
}
