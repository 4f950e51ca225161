package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/mna/ordfloat/internal/filetest"
	"github.com/mna/ordfloat/internal/maincmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpdateCmdTests = flag.Bool("test.update-cmd-tests", false, "If set, replace expected command test results with actual results.")

func TestCommands(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, c := range filetest.Cases(t, srcDir, ".txt") {
		t.Run(c.Name, func(t *testing.T) {
			src, err := os.ReadFile(c.Path)
			require.NoError(t, err)
			require.NotEmpty(t, c.Args, "missing args header")

			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{
				Stdin:  bytes.NewReader(src),
				Stdout: &buf,
				Stderr: &ebuf,
			}

			cmd := maincmd.Cmd{Environ: map[string]string{}}
			code := cmd.Main(append([]string{"ordfloat"}, c.Args...), stdio)
			c.DiffOutput(t, buf.String(), resultDir, testUpdateCmdTests)
			c.DiffErrors(t, ebuf.String(), resultDir, testUpdateCmdTests)

			if ebuf.Len() > 0 {
				assert.Equal(t, mainer.Failure, code)
			} else {
				assert.Equal(t, mainer.Success, code)
			}
		})
	}
}

func runMain(t *testing.T, environ map[string]string, stdin string, args ...string) (mainer.ExitCode, string, string) {
	t.Helper()

	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader(stdin),
		Stdout: &buf,
		Stderr: &ebuf,
	}
	cmd := maincmd.Cmd{BuildVersion: "1.2.3", BuildDate: "2024-01-02", Environ: environ}
	code := cmd.Main(append([]string{"ordfloat"}, args...), stdio)
	return code, buf.String(), ebuf.String()
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := runMain(t, nil, "", "--help")
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "usage: ordfloat")

	code, out, _ = runMain(t, nil, "", "-v")
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, "ordfloat 1.2.3 2024-01-02\n", out)
}

func TestInvalidArgs(t *testing.T) {
	cases := []struct {
		args []string
		err  string
	}{
		{nil, "no command specified"},
		{[]string{"nope"}, "unknown command: nope"},
		{[]string{"cmp", "1"}, "cmp: exactly two values must be provided"},
		{[]string{"--desc", "uniq"}, "uniq: invalid flag 'desc'"},
	}
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			code, _, eout := runMain(t, nil, "", c.args...)
			assert.Equal(t, mainer.InvalidArgs, code)
			assert.Contains(t, eout, c.err)
		})
	}
}

func TestSeparator(t *testing.T) {
	code, out, eout := runMain(t, map[string]string{"ORDFLOAT_SEPARATOR": ","}, "3 nan 1", "sort")
	require.Equal(t, mainer.Success, code, eout)
	assert.Equal(t, "NaN,1,3,", out)
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want string
	}{
		{"-inf", "nan", ">"},
		{"nan", "-inf", "<"},
		{"nan", "-nan", "="},
		{"-0", "0", "="},
		{"1", "2", "<"},
		{"bits:7ff8000000000001", "bits:fff8000000000000", "="},
	}
	for _, c := range cases {
		t.Run(c.a+" "+c.b, func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}
			require.NoError(t, maincmd.CmpValues[float64](stdio, "\n", c.a, c.b))
			assert.Equal(t, c.want+"\n", buf.String())
			assert.Empty(t, ebuf.String())
		})
	}

	code, out, _ := runMain(t, nil, "", "--f32", "cmp", "nan", "1")
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, "<\n", out)

	code, _, eout := runMain(t, nil, "", "cmp", "1", "x")
	assert.Equal(t, mainer.Failure, code)
	assert.Equal(t, "invalid literal \"x\": invalid syntax\n", eout)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	f1, f2 := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(f1, []byte("1 nan\n"), 0600))
	require.NoError(t, os.WriteFile(f2, []byte("-nan 0.5\n"), 0600))

	code, out, eout := runMain(t, nil, "", "uniq", f1, f2)
	require.Equal(t, mainer.Success, code, eout)
	assert.Equal(t, "1\nNaN\n0.5\n", out)

	code, _, eout = runMain(t, nil, "", "sort", filepath.Join(dir, "missing.txt"))
	assert.Equal(t, mainer.Failure, code)
	assert.Contains(t, eout, "missing.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := maincmd.ReadValues[float64](ctx, mainer.Stdio{}, f1)
	assert.ErrorIs(t, err, context.Canceled)
}
