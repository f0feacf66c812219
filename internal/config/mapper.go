package config

import (
	"math"
)

// Map applies the fields set in dto to base.
//
// Only properties of the file itself are checked here. Whether the request
// describes a chain that can actually hang is up to the solver.
func Map(path string, base Config, dto YAMLFile) (Config, error) {
	cfg := base

	for _, f := range []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"request.length", dto.Request.Length, &cfg.Request.L},
		{"request.span", dto.Request.Span, &cfg.Request.D},
		{"request.left", dto.Request.Left, &cfg.Request.YL},
		{"request.right", dto.Request.Right, &cfg.Request.YR},
	} {
		if f.src == nil {
			continue
		}
		if math.IsNaN(*f.src) || math.IsInf(*f.src, 0) {
			return Config{}, invalidField(path, f.name, "must be a finite number")
		}
		*f.dst = *f.src
	}

	if v := dto.Solver.MaxEvals; v != nil {
		if *v <= 0 {
			return Config{}, invalidField(path, "solver.max_evals", "must be positive")
		}
		cfg.Solver.MaxEvals = *v
	}
	if v := dto.Solver.Tolerance; v != nil {
		if !(*v > 0) || *v >= 1 {
			return Config{}, invalidField(path, "solver.tolerance", "must be in (0, 1)")
		}
		cfg.Solver.Tolerance = *v
	}

	if v := dto.Plot.Samples; v != nil {
		if *v < 2 {
			return Config{}, invalidField(path, "plot.samples", "at least 2 samples are required")
		}
		cfg.Plot.Samples = *v
	}
	if v := dto.Plot.Width; v != nil {
		if !(*v > 0) || math.IsInf(*v, 0) {
			return Config{}, invalidField(path, "plot.width", "must be positive")
		}
		cfg.Plot.Width = *v
	}
	if v := dto.Plot.Height; v != nil {
		if !(*v > 0) || math.IsInf(*v, 0) {
			return Config{}, invalidField(path, "plot.height", "must be positive")
		}
		cfg.Plot.Height = *v
	}
	if v := dto.Plot.Title; v != nil {
		cfg.Plot.Title = *v
	}

	return cfg, nil
}
