package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"honnef.co/go/catenary/internal/logger"
	"honnef.co/go/catenary/internal/render"
)

func plotCmd(g *globalFlags) *cobra.Command {
	var f requestFlags
	var out string
	var samples int
	var width, height float64
	var title string

	c := &cobra.Command{
		Use:   "plot",
		Short: "Render the catenary, its endpoints and its lowest point to an image",
		Long: `Render the catenary, its endpoints and its lowest point to an image.

The image format is chosen by the extension of --out (png, svg, pdf, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g, &f)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("samples") {
				cfg.Plot.Samples = samples
			}
			if flags.Changed("width") {
				cfg.Plot.Width = width
			}
			if flags.Changed("height") {
				cfg.Plot.Height = height
			}
			if flags.Changed("title") {
				cfg.Plot.Title = title
			}

			c, err := solve(cfg)
			if err != nil {
				return err
			}

			opts := render.Options{
				Samples: cfg.Plot.Samples,
				Width:   vg.Length(cfg.Plot.Width) * vg.Inch,
				Height:  vg.Length(cfg.Plot.Height) * vg.Inch,
				Title:   cfg.Plot.Title,
			}
			if err := render.Save(c.Span(0, cfg.Request.D), out, opts); err != nil {
				return err
			}
			logger.L().Info("plot.written", "path", out, "samples", opts.Samples)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	addRequestFlags(c, &f)
	def := render.DefaultOptions()
	c.Flags().StringVarP(&out, "out", "o", "catenary.png", "output file")
	c.Flags().IntVar(&samples, "samples", def.Samples, "number of points sampled along the curve")
	c.Flags().Float64Var(&width, "width", float64(def.Width/vg.Inch), "image width in inches")
	c.Flags().Float64Var(&height, "height", float64(def.Height/vg.Inch), "image height in inches")
	c.Flags().StringVar(&title, "title", def.Title, "plot title")
	return c
}
