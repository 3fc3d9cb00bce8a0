package main

import (
	tint "github.com/grindlemire/go-tint"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Showcase batched segment output",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := tint.Stdout(tint.WithPolicy(colorPolicy()))

		st.PrintSegments(
			tint.Styled(" INFO ", tint.Background(tint.Green), tint.Foreground(tint.Black)),
			tint.Plain(" listening on "),
			tint.Styled("localhost:8080", tint.Attributes(tint.AttrUnderline)),
			tint.Plain("\n"),
		)
		st.PrintSegments(
			tint.Styled(" WARN ", tint.Background(tint.Yellow), tint.Foreground(tint.Black)),
			tint.Plain(" connection pool "),
			tint.Styled("80%", tint.Foreground(tint.Yellow), tint.Attributes(tint.AttrBold)),
			tint.Plain(" full\n"),
		)
		st.PrintSegments(
			tint.Styled(" FAIL ", tint.Background(tint.Red), tint.Foreground(tint.BrightWhite), tint.Attributes(tint.AttrBold)),
			tint.Plain(" upstream "),
			tint.Styled("timed out", tint.Foreground(tint.Red)),
			tint.Plain(" after "),
			tint.Styled("3 retries", tint.Attributes(tint.AttrBold)),
			tint.Plain("\n"),
		)

		st.Println("")
		st.PrintSegments(
			tint.Styled("-const retries = 2", tint.Foreground(tint.Red)),
			tint.Plain("\n"),
			tint.Styled("+const retries = 3", tint.Foreground(tint.Green)),
			tint.Plain("\n"),
		)
		return nil
	},
}
