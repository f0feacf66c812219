package catenary

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// FlipY negates y coordinates, for drawing in SVG's y-down space.
	FlipY bool
}

// SVG converts a sequence of points to a string of SVG path commands that
// connect them with straight lines.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[Point], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of points to a string of SVG path commands and
// writes it to w. The first point is a "move to", all following points are
// "line to" commands.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[Point], opts SVGOptions) error {
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	cmd := "M"
	for pt := range seq {
		y := pt.Y
		if opts.FlipY {
			// Subtracting from zero doesn't produce -0.
			y = 0 - y
		}
		if _, err := fmt.Fprintf(w, "%s%s,%s", cmd, format(pt.X), format(y)); err != nil {
			return err
		}
		cmd = " L"
	}
	return nil
}
