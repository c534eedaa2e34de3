// Command argv splits, inspects and rebuilds Windows-style command lines.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dzonerzy/go-argv/argv"
	"github.com/dzonerzy/go-argv/termio"
)

var version = "dev" // set at build time

// app carries per-invocation state shared by all subcommands.
type app struct {
	v          *viper.Viper
	io         *termio.Manager
	log        *termio.Logger
	cfg        *Config
	exit       *exitCodes
	configFile string
}

func newApp(in io.Reader, out, errw io.Writer) *app {
	m := termio.New().WithIn(in).WithOut(out).WithErr(errw)
	return &app{
		v:    newViper(),
		io:   m,
		log:  termio.NewLogger(m).AllToStderr(true),
		cfg:  &Config{Format: formatText},
		exit: newExitCodes(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "argv",
		Short: "Inspect Windows command lines",
		Long: `argv tokenizes command lines with the Microsoft C runtime rules,
extracts options from the resulting argument vector and quotes
argument lists back into a single command line.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.configure()
		},
	}
	root.SetIn(a.io.In())
	root.SetOut(a.io.Out())
	root.SetErr(a.io.Err())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return misuse(err) })

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default .argv.yaml)")
	pf.String("format", formatText, "output format (text|json|yaml)")
	pf.String("color", "auto", "color output (auto|always|never)")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	if err := bindFlags(a.v, pf, "format", "color", "log-level"); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.splitCommand(),
		a.extractCommand(),
		a.quoteCommand(),
		a.verifyCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *app) configure() error {
	cfg, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return misuse(err)
	}
	a.cfg = cfg
	a.io.WithColor(cfg.Color)
	a.log = termio.NewLogger(a.io).WithLevel(cfg.LogLevel).AllToStderr(true)
	return nil
}

// run executes the tool and returns the process exit code.
func run(args []string, in io.Reader, out, errw io.Writer) int {
	a := newApp(in, out, errw)
	root := a.rootCommand()
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		a.log.Error("%v", err)
	}
	return a.exit.resolve(err)
}

// processArgs returns the tool's own arguments, split from the raw process
// command line where the platform provides one.
func processArgs() []string {
	s, err := argv.FromProcess()
	if err != nil {
		return os.Args[1:]
	}
	owned := s.Clone()
	s.Dispose()
	if owned.Count() == 0 {
		return nil
	}
	return owned.Args()[1:]
}

func main() {
	os.Exit(run(processArgs(), os.Stdin, os.Stdout, os.Stderr))
}
