package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-argv/argv"
)

// vector is one expected tokenization in a vector file.
type vector struct {
	Name   string   `yaml:"name"`
	Line   string   `yaml:"line"`
	Tokens []string `yaml:"tokens"`
}

func (a *app) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check tokenization against YAML vector files",
		Long: `Each FILE holds a YAML list of vectors:

  - name: quoted argument
    line: 'foo.exe "a b c" d'
    tokens: [foo.exe, a b c, d]

Every line is split and compared with its tokens. The tokens are also
joined back into a command line, which must split into the same tokens.`,
		Args: misuseArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, files []string) error {
			var total, failed int
			for _, file := range files {
				vectors, err := loadVectors(file)
				if err != nil {
					return err
				}
				for i, v := range vectors {
					total++
					if !a.checkVector(file, i, v) {
						failed++
					}
				}
			}
			if failed > 0 {
				return &exitError{
					Code: a.exit.defaults.VerifyFailed,
					Err:  fmt.Errorf("%d of %d vectors failed", failed, total),
				}
			}
			a.log.Success("%d vectors passed", total)
			return nil
		},
	}
}

func loadVectors(file string) ([]vector, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read vector file: %w", err)
	}
	var vectors []vector
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return vectors, nil
}

func (a *app) checkVector(file string, i int, v vector) bool {
	label := v.Name
	if label == "" {
		label = "#" + strconv.Itoa(i+1)
	}
	got := argv.Split(v.Line)
	if !slices.Equal(got, v.Tokens) {
		a.log.Error("%s: %s: split %q", file, label, v.Line)
		fmt.Fprintln(a.io.Err(), a.tokenDiff(v.Tokens, got))
		return false
	}
	if line, err := argv.Join(v.Tokens); err == nil && len(v.Tokens) > 0 {
		if back := argv.Split(line); !slices.Equal(back, v.Tokens) {
			a.log.Error("%s: %s: round trip through %q", file, label, line)
			fmt.Fprintln(a.io.Err(), a.tokenDiff(v.Tokens, back))
			return false
		}
	}
	a.log.Debug("%s: %s: ok", file, label)
	return true
}

// tokenDiff renders a character diff between two token lists, one quoted
// token per line.
func (a *app) tokenDiff(want, got []string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(quoteTokens(want), quoteTokens(got), false))
	if a.io.SupportsColor() {
		return dmp.DiffPrettyText(diffs)
	}
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func quoteTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = strconv.Quote(t)
	}
	return strings.Join(quoted, "\n")
}
