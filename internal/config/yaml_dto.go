package config

// YAMLFile is the on-disk shape of a configuration file. Pointer fields are
// optional; nil means "keep the default".
type YAMLFile struct {
	Request YAMLRequest `yaml:"request"`
	Solver  YAMLSolver  `yaml:"solver"`
	Plot    YAMLPlot    `yaml:"plot"`
}

type YAMLRequest struct {
	Length *float64 `yaml:"length"`
	Span   *float64 `yaml:"span"`
	Left   *float64 `yaml:"left"`
	Right  *float64 `yaml:"right"`
}

type YAMLSolver struct {
	MaxEvals  *int     `yaml:"max_evals"`
	Tolerance *float64 `yaml:"tolerance"`
}

type YAMLPlot struct {
	Samples *int     `yaml:"samples"`
	Width   *float64 `yaml:"width"`
	Height  *float64 `yaml:"height"`
	Title   *string  `yaml:"title"`
}
