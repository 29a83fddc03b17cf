package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// options are the flags shared by g2r and r2g.
type options struct {
	help bool
}

func newFlagSet(name string, withSnap bool) (*pflag.FlagSet, *options) {
	opts := &options{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.BoolVarP(&opts.help, "help", "h", false, "display this help message")
	fs.String("format", "text", "output format: text or csv")
	fs.Bool("header", false, "write a header row (csv only)")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
	if withSnap {
		fs.Float64("snap-tolerance", 1e-3,
			"snap an undetermined-bearing range this close (km) to pole-to-pole")
	}
	return fs, opts
}

// parseArgs parses flags and returns the positional arguments. Arguments
// that parse as numbers stay positional even when they start with '-', so
// western longitudes and southern latitudes need no "--" separator.
func parseArgs(fs *pflag.FlagSet, args []string) ([]string, error) {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case !strings.HasPrefix(arg, "-") || isNumber(arg):
			positional = append(positional, arg)
		default:
			flags = append(flags, arg)
			if takesValue(fs, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	if err := fs.Parse(flags); err != nil {
		return nil, err
	}
	return append(positional, fs.Args()...), nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// takesValue reports whether arg is a flag given without an inline value
// that consumes the next argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		if strings.Contains(arg, "=") {
			return false
		}
		f = fs.Lookup(arg[2:])
	case len(arg) == 2:
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func parseFloats(names []string, args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", names[i], arg)
		}
		vals[i] = v
	}
	return vals, nil
}
