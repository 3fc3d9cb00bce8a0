package tint

import "strings"

// MockDestination is a mock implementation of Destination for testing.
// It records every write and attribute operation for verification and can
// inject failures into the query, apply, and write paths.
type MockDestination struct {
	kind        DestinationKind
	interactive bool

	writes  []string
	attr    ConsoleAttr
	attrLog []ConsoleAttr

	queryCount int
	queryErr   error
	applyErr   error
	writeErr   error
}

// Ensure MockDestination implements Destination.
var _ Destination = (*MockDestination)(nil)

// NewMockDestination creates an interactive escape-kind mock destination.
func NewMockDestination() *MockDestination {
	return &MockDestination{
		kind:        KindEscape,
		interactive: true,
		attr:        defaultConsoleAttr,
	}
}

// NewMockConsole creates an interactive character-mode mock destination
// whose current attribute word is attr.
func NewMockConsole(attr ConsoleAttr) *MockDestination {
	return &MockDestination{
		kind:        KindConsole,
		interactive: true,
		attr:        attr,
	}
}

// Kind reports the configured destination kind.
func (m *MockDestination) Kind() DestinationKind {
	return m.kind
}

// Interactive reports the configured interactivity.
func (m *MockDestination) Interactive() bool {
	return m.interactive
}

// WriteString records s as a single write.
func (m *MockDestination) WriteString(s string) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.writes = append(m.writes, s)
	return len(s), nil
}

// Attributes returns the mock's current attribute word, counting the query.
func (m *MockDestination) Attributes() (ConsoleAttr, error) {
	m.queryCount++
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	return m.attr, nil
}

// SetAttributes replaces the mock's attribute word, logging the call.
func (m *MockDestination) SetAttributes(attr ConsoleAttr) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.attr = attr
	m.attrLog = append(m.attrLog, attr)
	return nil
}

// --- Test helper methods ---

// SetKind sets the destination kind for testing.
func (m *MockDestination) SetKind(k DestinationKind) {
	m.kind = k
}

// SetInteractive sets the interactivity for testing.
func (m *MockDestination) SetInteractive(interactive bool) {
	m.interactive = interactive
}

// SetQueryError makes Attributes fail with err.
func (m *MockDestination) SetQueryError(err error) {
	m.queryErr = err
}

// SetApplyError makes SetAttributes fail with err.
func (m *MockDestination) SetApplyError(err error) {
	m.applyErr = err
}

// SetWriteError makes WriteString fail with err.
func (m *MockDestination) SetWriteError(err error) {
	m.writeErr = err
}

// Writes returns every recorded write in order, one entry per WriteString
// call.
func (m *MockDestination) Writes() []string {
	return m.writes
}

// String returns the full byte stream received so far.
func (m *MockDestination) String() string {
	return strings.Join(m.writes, "")
}

// Attr returns the current attribute word.
func (m *MockDestination) Attr() ConsoleAttr {
	return m.attr
}

// AttrLog returns every attribute word applied, in order.
func (m *MockDestination) AttrLog() []ConsoleAttr {
	return m.attrLog
}

// QueryCount returns how many times Attributes was called.
func (m *MockDestination) QueryCount() int {
	return m.queryCount
}

// Reset clears recorded writes and attribute history, keeping configuration.
func (m *MockDestination) Reset() {
	m.writes = nil
	m.attrLog = nil
	m.queryCount = 0
}
