package tint

import (
	"testing"
)

func TestPolicy_String(t *testing.T) {
	type tc struct {
		policy Policy
		want   string
	}

	tests := map[string]tc{
		"auto":     {policy: PolicyAuto, want: "auto"},
		"forced":   {policy: PolicyForced, want: "forced"},
		"disabled": {policy: PolicyDisabled, want: "disabled"},
		"unknown":  {policy: Policy(42), want: "unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.policy.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPolicy_Renders(t *testing.T) {
	type tc struct {
		policy      Policy
		interactive bool
		suppressed  bool
		want        bool
	}

	tests := map[string]tc{
		"auto interactive":             {policy: PolicyAuto, interactive: true, want: true},
		"auto non-interactive":         {policy: PolicyAuto, interactive: false, want: false},
		"auto suppressed":              {policy: PolicyAuto, interactive: true, suppressed: true, want: false},
		"forced non-interactive":       {policy: PolicyForced, interactive: false, want: true},
		"forced suppressed":            {policy: PolicyForced, suppressed: true, want: true},
		"disabled interactive":         {policy: PolicyDisabled, interactive: true, want: false},
		"disabled forced-like inputs":  {policy: PolicyDisabled, interactive: true, suppressed: false, want: false},
		"auto suppressed and detached": {policy: PolicyAuto, interactive: false, suppressed: true, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.policy.renders(tt.interactive, tt.suppressed); got != tt.want {
				t.Errorf("renders(%v, %v) = %v, want %v", tt.interactive, tt.suppressed, got, tt.want)
			}
		})
	}
}

func TestPolicy_RendersConsole(t *testing.T) {
	type tc struct {
		policy     Policy
		suppressed bool
		want       bool
	}

	tests := map[string]tc{
		"auto":                {policy: PolicyAuto, want: true},
		"auto suppressed":     {policy: PolicyAuto, suppressed: true, want: false},
		"forced":              {policy: PolicyForced, want: true},
		"forced suppressed":   {policy: PolicyForced, suppressed: true, want: true},
		"disabled":            {policy: PolicyDisabled, want: false},
		"disabled suppressed": {policy: PolicyDisabled, suppressed: true, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.policy.rendersConsole(tt.suppressed); got != tt.want {
				t.Errorf("rendersConsole(%v) = %v, want %v", tt.suppressed, got, tt.want)
			}
		})
	}
}
