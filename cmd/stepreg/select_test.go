package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/stepreg/compress"
	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/format"
	"github.com/stretchr/testify/require"
)

// writeTable writes y = 2 + 4x with a seasonal column orthogonal to both.
func writeTable(t *testing.T) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("y,season,x\n")
	season := []float64{1, -1, -1, 1}
	wobble := []float64{0.2, 0.2, -0.2, -0.2}
	for i := range 16 {
		x := float64(i + 1)
		fmt.Fprintf(&sb, "%g,%g,%g\n", 2+4*x+wobble[i%4], season[i%4], x)
	}

	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	return path
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestSelectCommand(t *testing.T) {
	path := writeTable(t)

	out, logs, err := execute("select", "--data", path, "--target", "y", "--min-vars", "1", "--max-vars", "2")
	require.NoError(t, err)
	require.Contains(t, out, "FEATURE")
	require.Contains(t, out, "selected: 1")
	require.Contains(t, out, "threshold_in: 0.10")
	require.Regexp(t, `(?m)^x\s+`, out)
	require.NotContains(t, out, "season")
	require.Empty(t, logs)
}

func TestSelectCommand_VerboseAndConfig(t *testing.T) {
	path := writeTable(t)
	cfgPath := filepath.Join(t.TempDir(), "run.yaml")
	cfg := fmt.Sprintf("data: %s\ntarget: y\nmin_vars: 1\nmax_vars: 2\nconcurrency: 2\n", path)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, logs, err := execute("select", "--config", cfgPath, "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, "selected: 1")
	require.Contains(t, logs, "add feature")
	require.Contains(t, logs, "feature=x")
}

func TestSelectCommand_Errors(t *testing.T) {
	path := writeTable(t)

	_, _, err := execute("select", "--target", "y")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, _, err = execute("select", "--data", path, "--target", "y", "--min-vars", "5", "--max-vars", "2")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, _, err = execute("select", "--data", path, "--target", "nope")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)

	_, _, err = execute("select", "--data", path, "--target", "y", "--initial", "missing", "--min-vars", "1")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)
}

func TestSelectCommand_CompressionOverride(t *testing.T) {
	raw, err := os.ReadFile(writeTable(t))
	require.NoError(t, err)
	codec, err := compress.GetCodec(format.CompressionS2)
	require.NoError(t, err)
	payload, err := codec.Compress(raw)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.dat")
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	out, _, err := execute("select", "--data", path, "--target", "y", "--compression", "s2", "--min-vars", "1", "--max-vars", "2")
	require.NoError(t, err)
	require.Contains(t, out, "selected: 1")
	require.Regexp(t, `(?m)^x\s+`, out)

	_, _, err = execute("select", "--data", path, "--target", "y", "--compression", "gzip")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}
