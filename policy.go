package tint

// Policy selects whether a Stream attempts to style its destination.
type Policy uint8

const (
	// PolicyAuto styles only when the destination is an interactive terminal
	// and no suppression signal is present in the environment.
	PolicyAuto Policy = iota
	// PolicyForced always emits styling, regardless of the destination.
	PolicyForced
	// PolicyDisabled never emits styling.
	PolicyDisabled
)

// String returns a human-readable name for the policy.
func (p Policy) String() string {
	switch p {
	case PolicyAuto:
		return "auto"
	case PolicyForced:
		return "forced"
	case PolicyDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// renders reports whether escape styling should be emitted under this policy
// for a destination with the given interactivity. The suppression signal
// only affects PolicyAuto; PolicyForced renders regardless.
func (p Policy) renders(interactive, suppressed bool) bool {
	switch p {
	case PolicyForced:
		return true
	case PolicyDisabled:
		return false
	default:
		return interactive && !suppressed
	}
}

// rendersConsole reports whether console attributes should be applied under
// this policy. Character-mode destinations are consoles by construction, so
// interactivity is not consulted.
func (p Policy) rendersConsole(suppressed bool) bool {
	switch p {
	case PolicyForced:
		return true
	case PolicyDisabled:
		return false
	default:
		return !suppressed
	}
}
