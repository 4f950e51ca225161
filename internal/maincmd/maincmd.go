package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/mna/mainer"
)

const binName = "ordfloat"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<arg>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<arg>...]
       %[1]s [<option>...] cmp -- <a> <b>
       %[1]s -h|--help
       %[1]s -v|--version

Totally ordered floating point values: NaN is equal to any other
NaN and sorts below -Inf, -0 is equal to +0.

The <command> can be one of:
       cmp <a> <b>               Compare two values and print <, =
                                 or >.
       count [<path>...]         Print each distinct value with its
                                 number of occurrences, in ascending
                                 order.
       key [<path>...]           Print each value with its canonical
                                 hash key.
       sort [<path>...]          Print the values in ascending order.
       uniq [<path>...]          Print the values with duplicates
                                 removed, in order of first occurrence.

Values are read from the provided files, or from stdin if none is
provided, separated by whitespace. A '#' starts a comment that runs to
the end of the line. Besides Go float literals, values can be inf,
nan (with an optional sign) or a raw bit pattern such as bits:7fc00001.
Use -- before the arguments of cmp if the first one is negative.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --f32                     Use 32-bit floats (default is 64-bit).

Valid flag options for the <sort> command are:
       --desc                    Sort in descending order.

Environment variables:
       ORDFLOAT_SEPARATOR        String printed after each output
                                 record (default is a newline).

More information on the %[1]s repository:
       https://github.com/mna/ordfloat
`, binName)
)

type config struct {
	Separator string `env:"ORDFLOAT_SEPARATOR" envDefault:"\n"`
}

type Cmd struct {
	BuildVersion string
	BuildDate    string

	// Environ overrides the process environment when set.
	Environ map[string]string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	F32  bool `flag:"f32"`
	Desc bool `flag:"desc"`

	cfg   config
	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	if cmdName == "cmp" && len(c.args[1:]) != 2 {
		return fmt.Errorf("%s: exactly two values must be provided", cmdName)
	}

	if c.flags["desc"] && cmdName != "sort" {
		return fmt.Errorf("%s: invalid flag 'desc'", cmdName)
	}

	return nil
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false, // environment is read separately, see config
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if err := env.Parse(&c.cfg, env.Options{Environment: c.Environ}); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid environment: %s\n", err)
		return mainer.InvalidArgs
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command takes care of printing its errors, just return with an error code
		return mainer.Failure
	}
	return mainer.Success
}

// valid commands are those that take a mainer.Stdio and a slice of strings as
// input, and return an error as output.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
