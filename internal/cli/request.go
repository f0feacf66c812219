package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"honnef.co/go/catenary"
	"honnef.co/go/catenary/internal/config"
	"honnef.co/go/catenary/internal/logger"
)

// requestFlags are the flags shared by all commands that solve a catenary.
// They override values from the configuration file.
type requestFlags struct {
	length    float64
	span      float64
	left      float64
	right     float64
	maxEvals  int
	tolerance float64
}

func addRequestFlags(cmd *cobra.Command, f *requestFlags) {
	def := config.Default()
	cmd.Flags().Float64VarP(&f.length, "length", "L", def.Request.L, "length of the chain")
	cmd.Flags().Float64VarP(&f.span, "span", "d", def.Request.D, "horizontal distance between the endpoints")
	cmd.Flags().Float64Var(&f.left, "left", def.Request.YL, "height of the left endpoint")
	cmd.Flags().Float64Var(&f.right, "right", def.Request.YR, "height of the right endpoint")
	cmd.Flags().IntVar(&f.maxEvals, "max-evals", def.Solver.MaxEvals, "function evaluations allowed per root")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", def.Solver.Tolerance, "relative tolerance of the root finder")
}

// loadConfig reads the configuration file, if any, and applies flags that
// were set explicitly.
func loadConfig(cmd *cobra.Command, g *globalFlags, f *requestFlags) (config.Config, error) {
	cfg := config.Default()
	if g.config != "" {
		var err error
		cfg, err = config.Load(g.config)
		if err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Request.L = f.length
	}
	if flags.Changed("span") {
		cfg.Request.D = f.span
	}
	if flags.Changed("left") {
		cfg.Request.YL = f.left
	}
	if flags.Changed("right") {
		cfg.Request.YR = f.right
	}
	if flags.Changed("max-evals") {
		cfg.Solver.MaxEvals = f.maxEvals
	}
	if flags.Changed("tolerance") {
		cfg.Solver.Tolerance = f.tolerance
	}
	return cfg, nil
}

// solve runs the solver and logs the outcome.
func solve(cfg config.Config) (catenary.Catenary, error) {
	log := logger.L()
	req := cfg.Request
	log.Debug("solve.start",
		slog.Float64("L", req.L),
		slog.Float64("d", req.D),
		slog.Float64("yL", req.YL),
		slog.Float64("yR", req.YR),
		slog.Int("max_evals", cfg.Solver.MaxEvals),
	)

	c, err := catenary.SolveOpt(req, cfg.Solver)
	if err != nil {
		var (
			ferr *catenary.FeasibilityError
			nerr *catenary.NumericalError
		)
		switch {
		case errors.As(err, &ferr):
			log.Error("solve.infeasible", "request", req.String(), "reason", ferr.Reason)
		case errors.As(err, &nerr):
			log.Error("solve.failed", "request", req.String(), "param", nerr.Param, "err", nerr.Err)
		default:
			log.Error("solve.failed", "request", req.String(), "err", err)
		}
		return catenary.Catenary{}, err
	}

	log.Debug("solve.done", "xp", c.Xp, "a", c.A, "y0", c.Y0)
	return c, nil
}
