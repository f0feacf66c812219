package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/catenary"
)

func solveCmd(g *globalFlags) *cobra.Command {
	var f requestFlags

	c := &cobra.Command{
		Use:   "solve",
		Short: "Print the parameters xp, a and y0 of the catenary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g, &f)
			if err != nil {
				return err
			}
			c, err := solve(cfg)
			if err != nil {
				return err
			}

			s := c.Span(0, cfg.Request.D)
			lowest := s.Lowest()
			out := cmd.OutOrStdout()
			th := newTheme(out)
			for _, row := range [][2]string{
				{"xp", fmt.Sprintf("%.4f", c.Xp)},
				{"a", fmt.Sprintf("%.4f", c.A)},
				{"y0", fmt.Sprintf("%.4f", c.Y0)},
				{"lowest", fmt.Sprintf("(%.4f, %.4f)", lowest.X, lowest.Y)},
				{"arclen", fmt.Sprintf("%.4f", s.Arclen(catenary.DefaultAccuracy))},
			} {
				if _, err := fmt.Fprintln(out, th.Label.Render(row[0])+row[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addRequestFlags(c, &f)
	return c
}
