package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// labelWidth fits the longest label plus a space.
const labelWidth = 7

type theme struct {
	Label lipgloss.Style
}

// newTheme styles output for w. Writers that aren't terminals get plain text.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Label: r.NewStyle().Bold(true).Width(labelWidth),
	}
}
