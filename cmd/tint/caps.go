package main

import (
	"fmt"

	tint "github.com/grindlemire/go-tint"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Report the styling capabilities of standard output",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := tint.Stdout(tint.WithPolicy(colorPolicy()))
		dest := st.Destination()
		suppressed := termenv.EnvNoColor()

		fmt.Printf("destination  %s\n", dest.Kind())
		fmt.Printf("interactive  %v\n", dest.Interactive())
		fmt.Printf("policy       %s\n", st.Policy())
		fmt.Printf("suppressed   %v\n", suppressed)
		fmt.Printf("styled       %v\n", wouldStyle(st, suppressed))
		return nil
	},
}

// wouldStyle mirrors the decision a stream makes before emitting styling
// for an escape destination.
func wouldStyle(st *tint.Stream, suppressed bool) bool {
	switch st.Policy() {
	case tint.PolicyForced:
		return true
	case tint.PolicyDisabled:
		return false
	default:
		return st.Destination().Interactive() && !suppressed
	}
}
