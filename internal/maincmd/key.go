package maincmd

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/mna/mainer"
	"github.com/mna/ordfloat/lang/literal"
	"github.com/mna/ordfloat/lang/ordered"
	"golang.org/x/exp/constraints"
)

func (c *Cmd) Key(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if c.F32 {
		return KeyValues[float32](ctx, stdio, c.cfg.Separator, args...)
	}
	return KeyValues[float64](ctx, stdio, c.cfg.Separator, args...)
}

// KeyValues prints each value read from files along with its canonical key,
// in hexadecimal padded to the width of the float.
func KeyValues[T constraints.Float](ctx context.Context, stdio mainer.Stdio, sep string, files ...string) error {
	vals, err := ReadValues[T](ctx, stdio, files...)
	if err != nil {
		return printError(stdio, err)
	}

	var zero T
	digits := int(unsafe.Sizeof(zero)) * 2
	for _, v := range vals {
		fmt.Fprintf(stdio.Stdout, "%v\t0x%0*x%s", v, digits, v.Key(), sep)
	}
	return nil
}

func (c *Cmd) Cmp(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if c.F32 {
		return CmpValues[float32](stdio, c.cfg.Separator, args[0], args[1])
	}
	return CmpValues[float64](stdio, c.cfg.Separator, args[0], args[1])
}

// CmpValues parses the literals a and b and prints "<", "=" or ">" depending
// on how they compare.
func CmpValues[T constraints.Float](stdio mainer.Stdio, sep, a, b string) error {
	x, err := literal.Parse[T](a)
	if err != nil {
		return printError(stdio, err)
	}
	y, err := literal.Parse[T](b)
	if err != nil {
		return printError(stdio, err)
	}

	res := "="
	switch ordered.New(x).Cmp(ordered.New(y)) {
	case -1:
		res = "<"
	case +1:
		res = ">"
	}
	fmt.Fprintf(stdio.Stdout, "%s%s", res, sep)
	return nil
}
