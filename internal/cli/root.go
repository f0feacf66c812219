package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/catenary"
	"honnef.co/go/catenary/internal/buildinfo"
	"honnef.co/go/catenary/internal/logger"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitInfeasible = 2
	exitNumerical  = 3
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, catenary.ErrInfeasible):
		return exitInfeasible
	case errors.Is(err, catenary.ErrNumerical):
		return exitNumerical
	default:
		return exitError
	}
}

type globalFlags struct {
	debug     bool
	logFormat string
	config    string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:   "catenary",
		Short: "Compute the shape of a chain hanging between two points",
		Long: `Compute the catenary y(x) = y0 + a·cosh((x − xp) / a) of a chain of
length L hanging between (0, yL) and (d, yR).

Parameters default to L=158.98, d=130.76, yL=62.37, yR=0 and can be
given with flags or in a YAML file (--config).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := logger.Setup(logger.Config{
				Writer: cmd.ErrOrStderr(),
				Debug:  g.debug,
				Format: g.logFormat,
			})
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", logger.FormatText, "log format (text or json)")
	cmd.PersistentFlags().StringVarP(&g.config, "config", "c", "", "YAML file with request, solver and plot settings")

	cmd.AddCommand(solveCmd(&g))
	cmd.AddCommand(plotCmd(&g))
	cmd.AddCommand(sampleCmd(&g))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	})
	return cmd
}
