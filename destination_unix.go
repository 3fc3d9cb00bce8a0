//go:build unix

package tint

// probeConsoleKind reports how the descriptor accepts styling. Unix
// terminals always take escape sequences; the character-mode attribute path
// exists only for legacy Windows consoles.
func probeConsoleKind(fd uintptr) DestinationKind {
	return KindEscape
}

// consoleAttributes is unreachable on unix because probeConsoleKind never
// reports KindConsole here.
func consoleAttributes(fd uintptr) (ConsoleAttr, error) {
	return 0, ErrNotConsole
}

// setConsoleAttributes is unreachable on unix, see consoleAttributes.
func setConsoleAttributes(fd uintptr, attr ConsoleAttr) error {
	return ErrNotConsole
}
