package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// textRenderer is implemented by results with a human-readable form.
type textRenderer interface {
	renderText(w io.Writer, a *app) error
}

// emit writes v in the configured output format.
func (a *app) emit(v textRenderer) error {
	w := a.io.Out()
	switch a.cfg.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return v.renderText(w, a)
	}
}

// splitResult is the tokenization of one command line.
type splitResult struct {
	Line   string   `json:"line" yaml:"line"`
	Tokens []string `json:"tokens" yaml:"tokens"`
}

type splitResults []splitResult

func (r splitResults) renderText(w io.Writer, a *app) error {
	for i, res := range r {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if len(r) > 1 {
			if _, err := fmt.Fprintln(w, a.io.Faint(res.Line)); err != nil {
				return err
			}
		}
		for j, tok := range res.Tokens {
			if _, err := fmt.Fprintf(w, "%s %q\n", a.io.Bold(fmt.Sprintf("[%d]", j)), tok); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractResult reports what extract found and what is left over.
type extractResult struct {
	Program    string            `json:"program" yaml:"program"`
	Basename   string            `json:"basename" yaml:"basename"`
	Bools      map[string]bool   `json:"bools,omitempty" yaml:"bools,omitempty"`
	Ints       map[string]int64  `json:"ints,omitempty" yaml:"ints,omitempty"`
	Strings    map[string]string `json:"strings,omitempty" yaml:"strings,omitempty"`
	Missing    []string          `json:"missing,omitempty" yaml:"missing,omitempty"`
	Remaining  []string          `json:"remaining" yaml:"remaining"`
	Positional []string          `json:"positional" yaml:"positional"`
}

func (r *extractResult) renderText(w io.Writer, a *app) error {
	lines := []string{
		fmt.Sprintf("program: %q (%s)", r.Program, r.Basename),
	}
	for _, name := range sortedKeys(r.Bools) {
		lines = append(lines, fmt.Sprintf("%s = %t", name, r.Bools[name]))
	}
	for _, name := range sortedKeys(r.Ints) {
		lines = append(lines, fmt.Sprintf("%s = %d", name, r.Ints[name]))
	}
	for _, name := range sortedKeys(r.Strings) {
		lines = append(lines, fmt.Sprintf("%s = %q", name, r.Strings[name]))
	}
	for _, name := range r.Missing {
		lines = append(lines, a.io.Faint(name+" (not found)"))
	}
	lines = append(lines, fmt.Sprintf("remaining: %q", r.Remaining))
	lines = append(lines, fmt.Sprintf("positional: %q", r.Positional))
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// quoteResult is a rebuilt command line.
type quoteResult struct {
	Line string `json:"line" yaml:"line"`
}

func (r quoteResult) renderText(w io.Writer, _ *app) error {
	_, err := fmt.Fprintln(w, r.Line)
	return err
}

// versionResult describes the build.
type versionResult struct {
	Version string `json:"version" yaml:"version"`
}

func (r versionResult) renderText(w io.Writer, _ *app) error {
	_, err := fmt.Fprintf(w, "argv version %s\n", r.Version)
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
