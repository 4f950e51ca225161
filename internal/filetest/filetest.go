// Package filetest implements golden-file tests of the command: each source
// file is fed as stdin to the command, and what it prints is compared to the
// expected output stored next to it.
package filetest

import (
	"bufio"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

const argsHeader = "# args:"

var testUpdateAllTests = flag.Bool("test.update-all-tests", false, "If set, sets all test.update-*-tests.")

// A Case is a source file of a golden-file test.
type Case struct {
	// Name is the base name of the source file.
	Name string
	// Path is the path of the source file.
	Path string
	// Args are the command-line arguments declared on the first line of the
	// source file, in the form "# args: <arg>...".
	Args []string
}

// Cases returns the test cases in dir corresponding to the specified
// extension.
func Cases(t *testing.T, dir, ext string) []Case {
	t.Helper()

	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}

	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	res := make([]Case, 0, len(dents))
	for _, dent := range dents {
		if !dent.Type().IsRegular() {
			continue
		}
		if ext != "" && filepath.Ext(dent.Name()) != ext {
			continue
		}
		path := filepath.Join(dir, dent.Name())
		res = append(res, Case{Name: dent.Name(), Path: path, Args: readArgs(t, path)})
	}
	return res
}

func readArgs(t *testing.T, path string) []string {
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			t.Fatal(err)
		}
		return nil
	}
	line, ok := strings.CutPrefix(sc.Text(), argsHeader)
	if !ok {
		return nil
	}
	return strings.Fields(line)
}

// DiffOutput validates that output is the same as the expected result in the
// corresponding golden file. If updateFlag is true, it updates the golden file
// with output instead.
func (c Case) DiffOutput(t *testing.T, output, resultDir string, updateFlag *bool) {
	t.Helper()
	c.diff(t, "output", ".want", output, resultDir, updateFlag)
}

// DiffErrors validates that the errors output is the same as the expected
// result in the corresponding golden file. A missing golden file means that
// no error is expected.
func (c Case) DiffErrors(t *testing.T, output, resultDir string, updateFlag *bool) {
	t.Helper()
	c.diff(t, "errors", ".err", output, resultDir, updateFlag)
}

func (c Case) diff(t *testing.T, label, ext, output, resultDir string, updateFlag *bool) {
	t.Helper()

	goldFile := filepath.Join(resultDir, c.Name+ext)
	if *updateFlag || *testUpdateAllTests {
		if output == "" {
			if err := os.Remove(goldFile); err != nil && !os.IsNotExist(err) {
				t.Fatal(err)
			}
			return
		}
		if err := os.WriteFile(goldFile, []byte(output), 0600); err != nil {
			t.Fatal(err)
		}
		return
	}

	wantb, err := os.ReadFile(goldFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)
	if testing.Verbose() {
		t.Logf("got %s:\n%s\n", label, output)
	}
	if patch := diff.Diff(want, output); patch != "" {
		if testing.Verbose() {
			t.Logf("want %s:\n%s\n", label, want)
		}
		t.Errorf("diff %s:\n%s\n", label, patch)
	}
}
