package main

import (
	"fmt"
	"os"
	"time"

	tint "github.com/grindlemire/go-tint"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	verbosity  int
	forceColor bool
	noColor    bool

	rootCmd = &cobra.Command{
		Use:   "tint",
		Short: "Diagnostics for terminal text styling",
		Long: `tint renders styled sample output and reports what the current
terminal supports, using the same detection the library itself uses.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "force-color", false, "Emit styling even when stdout is not a terminal")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styling entirely")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(capsCmd)
	rootCmd.AddCommand(demoCmd)
}

// setupLogger configures the global logger based on verbosity level.
func setupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// colorPolicy maps the shared flags onto a stream policy. The explicit
// flags win over automatic detection.
func colorPolicy() tint.Policy {
	switch {
	case noColor:
		return tint.PolicyDisabled
	case forceColor:
		return tint.PolicyForced
	default:
		return tint.PolicyAuto
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tint version %s\n", version)
	},
}
