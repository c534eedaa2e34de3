// Package termio centralizes terminal output for the argv tool: writer
// selection, color capability detection and ANSI styling.
package termio

import (
	"fmt"
	stdio "io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when ANSI color is emitted.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// String returns the config spelling of the mode
func (c ColorMode) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Manager holds the tool's streams and terminal capabilities
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	color ColorMode
	vt    bool
}

// New returns a manager bound to process stdio
func New() *Manager {
	return &Manager{
		in:  os.Stdin,
		out: os.Stdout,
		err: os.Stderr,
		vt:  enableVirtualTerminal(os.Stdout),
	}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r stdio.Reader) *Manager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// WithColor sets the color mode and returns the manager for chaining.
func (m *Manager) WithColor(mode ColorMode) *Manager { m.color = mode; return m }

func (m *Manager) In() stdio.Reader  { return m.in }
func (m *Manager) Out() stdio.Writer { return m.out }
func (m *Manager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *Manager) IsTTY() bool { return isTerminal(m.out) }

// IsPiped reports whether input comes from something other than a terminal.
func (m *Manager) IsPiped() bool { return !isTerminal(m.in) }

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && f != nil && term.IsTerminal(int(f.Fd()))
}

// Width returns the output terminal width, falling back to $COLUMNS and
// then 80.
func (m *Manager) Width() int {
	if f, ok := m.out.(*os.File); ok && f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 80
}

// SupportsColor reports whether ANSI sequences should be written.
func (m *Manager) SupportsColor() bool {
	switch m.color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	if t := os.Getenv("TERM"); t == "dumb" {
		return false
	}
	return m.vt
}

// ColorLevel returns 0 for none, 1 for basic, 2 for 256 colors, and 3 for truecolor.
func (m *Manager) ColorLevel() int {
	if !m.SupportsColor() {
		return 0
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 3
	}
	if os.Getenv("WT_SESSION") != "" {
		return 3
	}
	if strings.Contains(os.Getenv("TERM"), "256color") {
		return 2
	}
	return 1
}

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *Manager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *Manager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *Manager) Faint(s string) string { return m.Colorize(s, "2") }
