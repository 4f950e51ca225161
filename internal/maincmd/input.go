package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mna/mainer"
	"github.com/mna/ordfloat/lang/literal"
	"github.com/mna/ordfloat/lang/ordered"
	"golang.org/x/exp/constraints"
)

const stdinName = "<stdin>"

// ReadValues reads the values from the files, or from stdin if no file is
// provided. It stops at the first error, returning the values read so far.
func ReadValues[T constraints.Float](ctx context.Context, stdio mainer.Stdio, files ...string) ([]ordered.Float[T], error) {
	if len(files) == 0 {
		return scanValues[T](stdio.Stdin, stdinName, nil)
	}

	var vals []ordered.Float[T]
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return vals, err
		}

		f, err := os.Open(file)
		if err != nil {
			return vals, err
		}
		vals, err = scanValues[T](f, file, vals)
		f.Close()
		if err != nil {
			return vals, err
		}
	}
	return vals, nil
}

func scanValues[T constraints.Float](r io.Reader, name string, vals []ordered.Float[T]) ([]ordered.Float[T], error) {
	sc := bufio.NewScanner(r)
	var line int
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		for _, field := range strings.Fields(text) {
			v, err := literal.Parse[T](field)
			if err != nil {
				return vals, fmt.Errorf("%s:%d: %w", name, line, err)
			}
			vals = append(vals, ordered.New(v))
		}
	}
	if err := sc.Err(); err != nil {
		return vals, fmt.Errorf("%s: %w", name, err)
	}
	return vals, nil
}
