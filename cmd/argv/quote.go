package main

import (
	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-argv/argv"
)

func (a *app) quoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [flags] -- PROGRAM [ARG...]",
		Short: "Join arguments into a command line",
		Long: `Quote each argument so that splitting the printed command line
gives back exactly the arguments passed in.`,
		Args: misuseArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			line, err := argv.Join(args)
			if err != nil {
				return err
			}
			return a.emit(quoteResult{Line: line})
		},
	}
}
