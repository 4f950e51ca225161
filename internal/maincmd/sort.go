package maincmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/mna/mainer"
	"github.com/mna/ordfloat/lang/ordered"
	"golang.org/x/exp/constraints"
)

func (c *Cmd) Sort(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if c.F32 {
		return SortValues[float32](ctx, stdio, c.Desc, c.cfg.Separator, args...)
	}
	return SortValues[float64](ctx, stdio, c.Desc, c.cfg.Separator, args...)
}

// SortValues prints the values read from files in ascending order, or
// descending if desc is true. Equal values keep their input order.
func SortValues[T constraints.Float](ctx context.Context, stdio mainer.Stdio, desc bool, sep string, files ...string) error {
	vals, err := ReadValues[T](ctx, stdio, files...)
	if err != nil {
		return printError(stdio, err)
	}

	if desc {
		slices.SortStableFunc(vals, func(a, b ordered.Float[T]) int {
			return b.Cmp(a)
		})
	} else {
		ordered.Sort(vals)
	}
	for _, v := range vals {
		fmt.Fprintf(stdio.Stdout, "%v%s", v, sep)
	}
	return nil
}
