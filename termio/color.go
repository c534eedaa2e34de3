package termio

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpec is a color in one of three spaces: basic (16), indexed (256),
// or truecolor (RGB).
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int
	r, g, b uint8
}

// Basic colors (0-7 normal, 8-15 bright)
var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack   = basic(8)
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{kind: 1, index: i} }

// Indexed returns a 256-color palette entry (0-255).
func Indexed(i int) ColorSpec { return ColorSpec{kind: 2, index: i} }

// Truecolor returns a 24-bit RGB color.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{kind: 3, r: r, g: g, b: b} }

// Style is a fluent builder for colors and attributes.
type Style struct {
	fg, bg                 *ColorSpec
	bold, faint, underline bool
}

func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bg(c ColorSpec) *Style { s.bg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Faint() *Style         { s.faint = true; return s }
func (s *Style) Underline() *Style     { s.underline = true; return s }

// Sprint returns text wrapped in the style's SGR sequence, or text
// unchanged when m does not support color.
func (s *Style) Sprint(m *Manager, text string) string {
	if !m.SupportsColor() {
		return text
	}
	seq := s.sgr(m.ColorLevel())
	if seq == "" {
		return text
	}
	return "\x1b[" + seq + "m" + text + "\x1b[0m"
}

// Sprintf formats with fmt.Sprintf and then applies the style.
func (s *Style) Sprintf(m *Manager, format string, a ...any) string {
	return s.Sprint(m, fmt.Sprintf(format, a...))
}

func (s *Style) sgr(level int) string {
	codes := make([]string, 0, 5)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.fg != nil {
		if c := colorCode(*s.fg, false, level); c != "" {
			codes = append(codes, c)
		}
	}
	if s.bg != nil {
		if c := colorCode(*s.bg, true, level); c != "" {
			codes = append(codes, c)
		}
	}
	return strings.Join(codes, ";")
}

func colorCode(c ColorSpec, bg bool, level int) string {
	base := 30
	if bg {
		base = 40
	}
	switch c.kind {
	case 1:
		idx := min(max(c.index, 0), 15)
		if idx < 8 {
			return strconv.Itoa(base + idx)
		}
		return strconv.Itoa(base + 60 + idx - 8)
	case 2:
		if level < 2 {
			return ""
		}
		return fmt.Sprintf("%d;5;%d", base+8, c.index)
	case 3:
		if level < 3 {
			return ""
		}
		return fmt.Sprintf("%d;2;%d;%d;%d", base+8, c.r, c.g, c.b)
	default:
		return ""
	}
}

// Theme maps semantic roles to colors
type Theme struct {
	Primary, Success, Warning, Error, Info, Debug, Muted ColorSpec
}

// DefaultTheme picks a palette matching m's color level.
func DefaultTheme(m *Manager) Theme {
	switch m.ColorLevel() {
	case 3:
		return Theme{
			Primary: Truecolor(92, 148, 252),
			Success: Truecolor(80, 250, 123),
			Warning: Truecolor(255, 184, 108),
			Error:   Truecolor(255, 85, 85),
			Info:    Truecolor(139, 233, 253),
			Debug:   Truecolor(189, 147, 249),
			Muted:   Truecolor(128, 128, 128),
		}
	case 2:
		return Theme{
			Primary: BrightBlue,
			Success: BrightGreen,
			Warning: BrightYellow,
			Error:   BrightRed,
			Info:    BrightCyan,
			Debug:   Indexed(141),
			Muted:   BrightBlack,
		}
	default:
		return Theme{
			Primary: BrightBlue,
			Success: BrightGreen,
			Warning: BrightYellow,
			Error:   BrightRed,
			Info:    BrightCyan,
			Debug:   BrightMagenta,
			Muted:   BrightBlack,
		}
	}
}
