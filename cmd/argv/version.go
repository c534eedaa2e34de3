package main

import "github.com/spf13/cobra"

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  misuseArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.emit(versionResult{Version: version})
		},
	}
}
