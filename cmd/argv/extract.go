package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-argv/argv"
)

type extractOptions struct {
	bools   []string
	ints    []string
	strings []string
	strict  bool
}

func (a *app) extractCommand() *cobra.Command {
	var o extractOptions
	cmd := &cobra.Command{
		Use:   "extract [flags] -- CMDLINE | ARG...",
		Short: "Extract options from a command line",
		Long: `Build an argument store and pull the requested options out of it.

A single argument is split as a raw command line; several arguments are
taken as an already split argument vector; with none, the command line
is read from stdin. Boolean options are extracted first, then integer
options, then string options, each in the order given.`,
		Example: `  argv extract --bool=-v --int=--jobs -- 'tool.exe -v --jobs 0x10 src'
  argv extract --string=--out --strict -- tool.exe --out dir --bogus`,
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := a.storeFor(args)
			if err != nil {
				return err
			}
			defer s.Dispose()
			res, err := o.run(s)
			if err != nil {
				return err
			}
			return a.emit(res)
		},
	}
	f := cmd.Flags()
	f.StringArrayVar(&o.bools, "bool", nil, "boolean option to extract (repeatable)")
	f.StringArrayVar(&o.ints, "int", nil, "integer option to extract (repeatable)")
	f.StringArrayVar(&o.strings, "string", nil, "string option to extract (repeatable)")
	f.BoolVar(&o.strict, "strict", false, "fail on options that were not declared")
	return cmd
}

func (a *app) storeFor(args []string) (*argv.Store, error) {
	switch len(args) {
	case 0:
		raw, err := io.ReadAll(io.LimitReader(a.io.In(), maxLine))
		if err != nil {
			return nil, err
		}
		return argv.Parse(strings.TrimRight(string(raw), "\r\n"))
	case 1:
		return argv.Parse(args[0])
	default:
		return argv.FromArgv(slices.Clone(args)), nil
	}
}

func (o *extractOptions) run(s *argv.Store) (*extractResult, error) {
	res := &extractResult{
		Program:  s.Program(),
		Basename: s.Basename(),
		Bools:    make(map[string]bool, len(o.bools)),
		Ints:     make(map[string]int64, len(o.ints)),
		Strings:  make(map[string]string, len(o.strings)),
	}
	for _, name := range o.bools {
		res.Bools[name] = s.Bool(name)
	}
	for _, name := range o.ints {
		if v, ok := s.Int(name); ok {
			res.Ints[name] = v
			continue
		}
		if err := o.checkValue(s, name, true); err != nil {
			return nil, err
		}
		res.Missing = append(res.Missing, name)
	}
	for _, name := range o.strings {
		if v, ok := s.String(name); ok {
			res.Strings[name] = v
			continue
		}
		if err := o.checkValue(s, name, false); err != nil {
			return nil, err
		}
		res.Missing = append(res.Missing, name)
	}

	if o.strict {
		known := append(append(append([]string(nil), o.bools...), o.ints...), o.strings...)
		if err := s.Unknown(known...); err != nil {
			return nil, err
		}
	}
	res.Remaining = slices.Clone(s.Args())
	res.Positional = s.Positional()
	return res, nil
}

// checkValue explains, in strict mode, why an option that is present could
// not be extracted.
func (o *extractOptions) checkValue(s *argv.Store, name string, numeric bool) error {
	i := s.Find(name)
	if !o.strict || i < 0 {
		return nil
	}
	if i+1 >= s.Count() {
		return argv.NewError(argv.ErrorTypeMissingValue, fmt.Sprintf("option '%s' requires a value", name)).
			WithOption(name)
	}
	if !numeric {
		return nil
	}
	value := s.Arg(i + 1)
	_, err := argv.ParseInt(value)
	return argv.NewError(argv.ErrorTypeInvalidValue, fmt.Sprintf("option '%s' expects an integer, got '%s'", name, value)).
		WithOption(name).
		WithCause(err)
}
