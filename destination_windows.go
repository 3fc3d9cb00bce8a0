//go:build windows

package tint

import "golang.org/x/sys/windows"

// SetConsoleTextAttribute is not wrapped by x/sys/windows, so it is loaded
// from kernel32 directly.
var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTextAttribute = kernel32.NewProc("SetConsoleTextAttribute")
)

// probeConsoleKind classifies a descriptor. Handles that are not consoles
// (pipes, files) stay on the escape path. Real consoles are upgraded to
// escape handling when virtual terminal processing is available, which
// covers every modern Windows console host; only legacy consoles where the
// upgrade fails use the character-mode attribute API.
func probeConsoleKind(fd uintptr) DestinationKind {
	h := windows.Handle(fd)

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return KindEscape
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return KindEscape
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return KindConsole
	}
	return KindEscape
}

// consoleAttributes returns the console's current attribute word.
func consoleAttributes(fd uintptr) (ConsoleAttr, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, err
	}
	return ConsoleAttr(info.Attributes), nil
}

// setConsoleAttributes replaces the console's attribute word. The word is
// global console state shared by every handle to the same console.
func setConsoleAttributes(fd uintptr, attr ConsoleAttr) error {
	r1, _, err := procSetConsoleTextAttribute.Call(fd, uintptr(attr))
	if r1 == 0 {
		return err
	}
	return nil
}
