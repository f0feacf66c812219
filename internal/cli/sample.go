package cli

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/catenary"
)

func sampleCmd(g *globalFlags) *cobra.Command {
	var f requestFlags
	var samples int
	var format string

	c := &cobra.Command{
		Use:   "sample",
		Short: "Print points along the catenary as CSV or SVG path data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g, &f)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("samples") {
				cfg.Plot.Samples = samples
			}
			if cfg.Plot.Samples < 2 {
				return fmt.Errorf("at least 2 samples are required, got %d", cfg.Plot.Samples)
			}

			c, err := solve(cfg)
			if err != nil {
				return err
			}
			s := c.Span(0, cfg.Request.D)
			out := cmd.OutOrStdout()

			switch format {
			case "csv":
				w := csv.NewWriter(out)
				if err := w.Write([]string{"x", "y"}); err != nil {
					return err
				}
				for pt := range s.Points(cfg.Plot.Samples) {
					if err := w.Write([]string{
						strconv.FormatFloat(pt.X, 'f', -1, 64),
						strconv.FormatFloat(pt.Y, 'f', -1, 64),
					}); err != nil {
						return err
					}
				}
				w.Flush()
				return w.Error()
			case "svg":
				if err := catenary.WriteSVG(out, s.Points(cfg.Plot.Samples), catenary.SVGOptions{MaxPrecision: 4, FlipY: true}); err != nil {
					return err
				}
				_, err := fmt.Fprintln(out)
				return err
			default:
				return fmt.Errorf("unknown format %q (want csv or svg)", format)
			}
		},
	}

	addRequestFlags(c, &f)
	c.Flags().IntVarP(&samples, "samples", "n", catenary.DefaultSamples, "number of points")
	c.Flags().StringVar(&format, "format", "csv", "output format (csv or svg)")
	return c
}
