package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/catenary"
	"honnef.co/go/catenary/internal/logger"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(logger.Reset)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "catenary.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestSolve_Defaults(t *testing.T) {
	out, _, err := run(t, "solve")
	require.NoError(t, err)

	assert.Contains(t, out, "xp     98.0986\n")
	assert.Contains(t, out, "a      78.9292\n")
	assert.Contains(t, out, "y0     -85.7839\n")
	assert.Contains(t, out, "lowest (98.0986, -6.8547)\n")
	assert.Contains(t, out, "arclen 158.9800\n")
}

func TestSolve_Flags(t *testing.T) {
	out, _, err := run(t, "solve", "--length", "110", "--span", "100", "--left", "0", "--right", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "xp     50.0000\n")
	assert.Contains(t, out, "a      65.4964\n")
}

func TestSolve_ConfigFile(t *testing.T) {
	p := writeConfig(t, `
request:
  length: 110
  span: 100
  left: 0
  right: 0
`)

	out, _, err := run(t, "solve", "--config", p)
	require.NoError(t, err)
	assert.Contains(t, out, "xp     50.0000\n")

	// Flags win over the file, unset flags don't.
	out, _, err = run(t, "solve", "--config", p, "--left", "62.37", "--span", "130.76", "--length", "158.98")
	require.NoError(t, err)
	assert.Contains(t, out, "xp     98.0986\n")
}

func TestSolve_MissingConfig(t *testing.T) {
	_, _, err := run(t, "solve", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, exitError, exitCode(err))
}

func TestSolve_Infeasible(t *testing.T) {
	out, stderr, err := run(t, "solve", "--length", "99", "--span", "100", "--left", "0", "--right", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, catenary.ErrInfeasible)
	assert.Equal(t, exitInfeasible, exitCode(err))
	assert.Empty(t, out)
	assert.Contains(t, stderr, "solve.infeasible")
}

func TestSolve_Budget(t *testing.T) {
	_, stderr, err := run(t, "solve", "--max-evals", "3", "--log-format", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, catenary.ErrNumerical)
	assert.Equal(t, exitNumerical, exitCode(err))
	assert.Contains(t, stderr, `"msg":"solve.failed"`)
	assert.Contains(t, stderr, `"param":"a"`)
}

func TestSolve_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "solve", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "solve.start")
	assert.Contains(t, stderr, "solve.done")
}

func TestBadLogFormat(t *testing.T) {
	_, _, err := run(t, "solve", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestSample_CSV(t *testing.T) {
	out, _, err := run(t, "sample", "--length", "110", "--span", "100", "--left", "0", "--right", "0", "-n", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "x,y", lines[0])
	assert.Equal(t, "0,0", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "50,-20.03"), "middle row %q", lines[3])
	assert.True(t, strings.HasPrefix(lines[5], "100,"), "last row %q", lines[5])
}

func TestSample_SVG(t *testing.T) {
	out, _, err := run(t, "sample", "--length", "110", "--span", "100", "--left", "0", "--right", "0", "-n", "3", "--format", "svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "M0,0 L50,20.03"), "got %q", out)
	assert.Equal(t, 2, strings.Count(out, " L"))
}

func TestSample_Errors(t *testing.T) {
	_, _, err := run(t, "sample", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, _, err = run(t, "sample", "-n", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 samples")
}

func TestPlot(t *testing.T) {
	for _, ext := range []string{"png", "svg"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catenary."+ext)
			out, _, err := run(t, "plot", "--out", path, "--samples", "50", "--width", "4", "--height", "3")
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("Wrote %s\n", path), out)

			b, err := os.ReadFile(path)
			require.NoError(t, err)
			switch ext {
			case "png":
				assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
			case "svg":
				assert.Contains(t, string(b), "<svg")
			}
		})
	}
}

func TestPlot_Infeasible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catenary.png")
	_, _, err := run(t, "plot", "--out", path, "--length", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, catenary.ErrInfeasible)
	assert.NoFileExists(t, path)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "catenary dev"))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{errors.New("boom"), exitError},
		{&catenary.FeasibilityError{Reason: "x"}, exitInfeasible},
		{fmt.Errorf("wrapped: %w", &catenary.NumericalError{Param: "xp", Err: catenary.ErrNoConvergence}), exitNumerical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitCode(tt.err), "%v", tt.err)
	}
}

func TestTheme_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	th := newTheme(&buf)
	assert.Equal(t, "xp     ", th.Label.Render("xp"))
	assert.Equal(t, "arclen ", th.Label.Render("arclen"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSample_WriteError(t *testing.T) {
	t.Cleanup(logger.Reset)
	for _, format := range []string{"csv", "svg"} {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"sample", "--format", format})
		cmd.SetOut(failingWriter{})
		cmd.SetErr(&bytes.Buffer{})
		err := cmd.Execute()
		require.Error(t, err, format)
		assert.Contains(t, err.Error(), "disk full", format)
	}
}
