package tint

import (
	"testing"
)

func TestDefaultColor(t *testing.T) {
	c := DefaultColor()
	if c.Kind() != ColorDefault {
		t.Errorf("DefaultColor().Kind() = %v, want ColorDefault", c.Kind())
	}
	if !c.IsDefault() {
		t.Error("DefaultColor().IsDefault() = false, want true")
	}
}

func TestExtendedColor(t *testing.T) {
	type tc struct {
		idx uint8
	}

	tests := map[string]tc{
		"zero": {idx: 0},
		"one":  {idx: 1},
		"mid":  {idx: 127},
		"max":  {idx: 255},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := ExtendedColor(tt.idx)
			if c.Kind() != ColorExtended {
				t.Errorf("ExtendedColor(%d).Kind() = %v, want ColorExtended", tt.idx, c.Kind())
			}
			if c.IsDefault() {
				t.Errorf("ExtendedColor(%d).IsDefault() = true, want false", tt.idx)
			}
			if got := c.Index(); got != tt.idx {
				t.Errorf("ExtendedColor(%d).Index() = %d, want %d", tt.idx, got, tt.idx)
			}
		})
	}
}

func TestColorFromIndex_Kinds(t *testing.T) {
	type tc struct {
		idx  uint8
		kind ColorKind
	}

	tests := map[string]tc{
		"first basic":  {idx: 0, kind: ColorBasic},
		"last basic":   {idx: 7, kind: ColorBasic},
		"first bright": {idx: 8, kind: ColorBright},
		"last bright":  {idx: 15, kind: ColorBright},
		"first ext":    {idx: 16, kind: ColorExtended},
		"max ext":      {idx: 255, kind: ColorExtended},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := ColorFromIndex(tt.idx)
			if c.Kind() != tt.kind {
				t.Errorf("ColorFromIndex(%d).Kind() = %v, want %v", tt.idx, c.Kind(), tt.kind)
			}
		})
	}
}

func TestColorFromIndex_RoundTrip(t *testing.T) {
	// Index is total over ColorFromIndex's range: every palette index maps
	// back to itself.
	for n := 0; n < 256; n++ {
		c := ColorFromIndex(uint8(n))
		if got := c.Index(); got != uint8(n) {
			t.Fatalf("ColorFromIndex(%d).Index() = %d, want %d", n, got, n)
		}
	}
}

func TestColor_IntensifySoften(t *testing.T) {
	basics := []Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
	brights := []Color{BrightBlack, BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightMagenta, BrightCyan, BrightWhite}

	for i, c := range basics {
		if got := c.Intensify(); !got.Equal(brights[i]) {
			t.Errorf("%v.Intensify() = %v, want %v", c, got, brights[i])
		}
		if got := c.Intensify().Soften(); !got.Equal(c) {
			t.Errorf("%v.Intensify().Soften() = %v, want %v", c, got, c)
		}
		if got := c.Intensify().Soften().Intensify(); !got.Equal(c.Intensify()) {
			t.Errorf("%v round trip lost intensity: got %v", c, got)
		}
		if got := c.Soften(); !got.Equal(c) {
			t.Errorf("%v.Soften() = %v, want identity on basic colors", c, got)
		}
	}

	for i, c := range brights {
		if got := c.Soften(); !got.Equal(basics[i]) {
			t.Errorf("%v.Soften() = %v, want %v", c, got, basics[i])
		}
		if got := c.Intensify(); !got.Equal(c) {
			t.Errorf("%v.Intensify() = %v, want identity on bright colors", c, got)
		}
	}
}

func TestColor_IntensifySoften_Identity(t *testing.T) {
	type tc struct {
		color Color
	}

	tests := map[string]tc{
		"default":          {color: DefaultColor()},
		"extended low":     {color: ExtendedColor(3)},
		"extended bright":  {color: ExtendedColor(12)},
		"extended outside": {color: ExtendedColor(200)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.color.Intensify(); !got.Equal(tt.color) {
				t.Errorf("Intensify() = %v, want %v unchanged", got, tt.color)
			}
			if got := tt.color.Soften(); !got.Equal(tt.color) {
				t.Errorf("Soften() = %v, want %v unchanged", got, tt.color)
			}
		})
	}
}

func TestColor_Equal(t *testing.T) {
	type tc struct {
		a, b  Color
		equal bool
	}

	tests := map[string]tc{
		"default == default":   {a: DefaultColor(), b: DefaultColor(), equal: true},
		"red == red":           {a: Red, b: Red, equal: true},
		"red != green":         {a: Red, b: Green, equal: false},
		"red != bright red":    {a: Red, b: BrightRed, equal: false},
		"ext 1 == ext 1":       {a: ExtendedColor(1), b: ExtendedColor(1), equal: true},
		"ext 1 != ext 2":       {a: ExtendedColor(1), b: ExtendedColor(2), equal: false},
		"red != ext 1":         {a: Red, b: ExtendedColor(1), equal: false},
		"default != black":     {a: DefaultColor(), b: Black, equal: false},
		"from index == named":  {a: ColorFromIndex(1), b: Red, equal: true},
		"from index == bright": {a: ColorFromIndex(9), b: BrightRed, equal: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			// Test symmetry
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("(symmetric) Equal() = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestPredefinedColors(t *testing.T) {
	type tc struct {
		color    Color
		kind     ColorKind
		expected uint8
	}

	tests := map[string]tc{
		"Black":         {color: Black, kind: ColorBasic, expected: 0},
		"Red":           {color: Red, kind: ColorBasic, expected: 1},
		"Green":         {color: Green, kind: ColorBasic, expected: 2},
		"Yellow":        {color: Yellow, kind: ColorBasic, expected: 3},
		"Blue":          {color: Blue, kind: ColorBasic, expected: 4},
		"Magenta":       {color: Magenta, kind: ColorBasic, expected: 5},
		"Cyan":          {color: Cyan, kind: ColorBasic, expected: 6},
		"White":         {color: White, kind: ColorBasic, expected: 7},
		"BrightBlack":   {color: BrightBlack, kind: ColorBright, expected: 8},
		"BrightRed":     {color: BrightRed, kind: ColorBright, expected: 9},
		"BrightGreen":   {color: BrightGreen, kind: ColorBright, expected: 10},
		"BrightYellow":  {color: BrightYellow, kind: ColorBright, expected: 11},
		"BrightBlue":    {color: BrightBlue, kind: ColorBright, expected: 12},
		"BrightMagenta": {color: BrightMagenta, kind: ColorBright, expected: 13},
		"BrightCyan":    {color: BrightCyan, kind: ColorBright, expected: 14},
		"BrightWhite":   {color: BrightWhite, kind: ColorBright, expected: 15},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.color.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.color.Kind(), tt.kind)
			}
			if tt.color.Index() != tt.expected {
				t.Errorf("Index() = %d, want %d", tt.color.Index(), tt.expected)
			}
		})
	}
}

func TestColor_String(t *testing.T) {
	type tc struct {
		color Color
		want  string
	}

	tests := map[string]tc{
		"default":  {color: DefaultColor(), want: "default"},
		"red":      {color: Red, want: "red"},
		"bright":   {color: BrightCyan, want: "bright-cyan"},
		"extended": {color: ExtendedColor(42), want: "extended(42)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.color.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_IndexPanicsOnDefault(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Index() on the default color should panic")
		}
	}()
	DefaultColor().Index()
}
