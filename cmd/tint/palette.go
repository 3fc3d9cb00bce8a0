package main

import (
	tint "github.com/grindlemire/go-tint"
	"github.com/spf13/cobra"
)

var paletteExtended bool

var paletteColors = []tint.Color{
	tint.Black, tint.Red, tint.Green, tint.Yellow,
	tint.Blue, tint.Magenta, tint.Cyan, tint.White,
	tint.BrightBlack, tint.BrightRed, tint.BrightGreen, tint.BrightYellow,
	tint.BrightBlue, tint.BrightMagenta, tint.BrightCyan, tint.BrightWhite,
}

var paletteAttrs = []tint.Attr{
	tint.AttrBold,
	tint.AttrDim,
	tint.AttrItalic,
	tint.AttrUnderline,
	tint.AttrBlink,
	tint.AttrReverse,
	tint.AttrHidden,
	tint.AttrStrikethrough,
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Render the named colors and attribute samples",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := tint.Stdout(tint.WithPolicy(colorPolicy()))

		st.Println("Named colors")
		for _, c := range paletteColors {
			st.Printf("  %2d ", c.Index())
			st.SetForeground(c)
			st.Printf("%-15s", c.String())
			st.Clear()
			st.SetBackground(c)
			st.Print("      ")
			st.Clear()
			st.Println("")
		}

		st.Println("")
		st.Println("Attributes")
		for _, a := range paletteAttrs {
			st.Printf("  %-14s", a.String())
			st.SetAttrs(a)
			st.Print("sample")
			st.Clear()
			st.Println("")
		}

		if paletteExtended {
			st.Println("")
			st.Println("Extended palette")
			for row := 0; row < 16; row++ {
				st.Print("  ")
				for col := 0; col < 16; col++ {
					st.SetBackground(tint.ExtendedColor(uint8(row*16 + col)))
					st.Print("  ")
				}
				st.Clear()
				st.Println("")
			}
		}
		return nil
	},
}

func init() {
	paletteCmd.Flags().BoolVar(&paletteExtended, "extended", false, "Include the 256-color extended palette")
}
