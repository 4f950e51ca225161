package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/ordfloat/lang/floatmap"
	"golang.org/x/exp/constraints"
)

func (c *Cmd) Count(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if c.F32 {
		return CountValues[float32](ctx, stdio, c.cfg.Separator, args...)
	}
	return CountValues[float64](ctx, stdio, c.cfg.Separator, args...)
}

// CountValues prints each distinct value read from files along with its
// number of occurrences, in ascending order. The value printed for a group of
// equal values is the first one read.
func CountValues[T constraints.Float](ctx context.Context, stdio mainer.Stdio, sep string, files ...string) error {
	vals, err := ReadValues[T](ctx, stdio, files...)
	if err != nil {
		return printError(stdio, err)
	}

	counts := floatmap.NewMap[T, int](0)
	for _, v := range vals {
		n, _ := counts.Get(v)
		counts.Put(v, n+1)
	}
	for _, k := range counts.Keys() {
		n, _ := counts.Get(k)
		fmt.Fprintf(stdio.Stdout, "%v\t%d%s", k, n, sep)
	}
	return nil
}
