package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/ordfloat/lang/floatmap"
	"golang.org/x/exp/constraints"
)

func (c *Cmd) Uniq(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if c.F32 {
		return UniqValues[float32](ctx, stdio, c.cfg.Separator, args...)
	}
	return UniqValues[float64](ctx, stdio, c.cfg.Separator, args...)
}

// UniqValues prints the values read from files in their input order, skipping
// those equal to a value already printed.
func UniqValues[T constraints.Float](ctx context.Context, stdio mainer.Stdio, sep string, files ...string) error {
	vals, err := ReadValues[T](ctx, stdio, files...)
	if err != nil {
		return printError(stdio, err)
	}

	seen := floatmap.NewSet[T](len(vals))
	for _, v := range vals {
		if seen.Add(v) {
			fmt.Fprintf(stdio.Stdout, "%v%s", v, sep)
		}
	}
	return nil
}
