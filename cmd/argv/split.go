package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-argv/argv"
)

const maxLine = 1 << 20

func (a *app) splitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split [CMDLINE]",
		Short: "Tokenize a command line",
		Long: `Tokenize CMDLINE, or each line read from stdin when no argument is
given, and print the resulting arguments.`,
		Args: misuseArgs(cobra.MaximumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = a.readLines(); err != nil {
					return err
				}
			}
			results := make(splitResults, 0, len(lines))
			for _, line := range lines {
				tokens, bytes := argv.Bounds(len(line))
				a.log.Debug("line of %d bytes: at most %d tokens, %d arena bytes", len(line), tokens-1, bytes)
				results = append(results, splitResult{Line: line, Tokens: argv.Split(line)})
			}
			return a.emit(results)
		},
	}
}

// readLines reads stdin line by line, dropping CR before LF.
func (a *app) readLines() ([]string, error) {
	sc := bufio.NewScanner(a.io.In())
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}
