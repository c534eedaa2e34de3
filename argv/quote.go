package argv

import (
	"strings"
)

// Quote returns arg encoded so that Split reads it back as a single
// argument in any position after the program name.
func Quote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"") {
		return arg
	}

	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			// Double the pending backslashes and escape the quote itself
			for k := 0; k < slashes+1; k++ {
				b.WriteByte('\\')
			}
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	// Backslashes before the closing quote must be doubled
	for k := 0; k < slashes; k++ {
		b.WriteByte('\\')
	}
	b.WriteByte('"')
	return b.String()
}

// Join builds a command line that Split turns back into args. The program
// name is never backslash-processed by the tokenizer, so it cannot contain
// a quote; Join reports ErrorTypeInvalidArgument in that case.
func Join(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}

	prog := args[0]
	if strings.IndexByte(prog, '"') >= 0 {
		return "", NewError(ErrorTypeInvalidArgument, "program name cannot contain a quote: "+prog).WithOption(prog)
	}

	var b strings.Builder
	if prog == "" || strings.ContainsAny(prog, " \t") {
		b.WriteByte('"')
		b.WriteString(prog)
		b.WriteByte('"')
	} else {
		b.WriteString(prog)
	}
	for _, a := range args[1:] {
		b.WriteByte(' ')
		b.WriteString(Quote(a))
	}
	return b.String(), nil
}
