// Package argv splits Windows-style command lines and extracts options
// from the resulting argument vector.
//
// Splitting follows the Microsoft C runtime rules: arguments are separated
// by spaces and tabs, double quotes group text, 2N backslashes before a
// quote yield N backslashes and an opening or closing quote, 2N+1
// backslashes before a quote yield N backslashes and a literal quote, and
// backslashes anywhere else are literal. Inside a quoted region "" is a
// literal quote. The program name is special: it is copied verbatim up to
// the first blank, or between quotes when it starts with one.
//
// A Store holds the arguments in a single pre-sized arena:
//
//	args, err := argv.Parse(`tool.exe --level 3 -v "C:\Program Files\x"`)
//	if err != nil {
//		return err
//	}
//	defer args.Dispose()
//
//	verbose := args.Bool("-v")
//	level, _ := args.Int("--level")
//	rest := args.Positional() // ["C:\Program Files\x"]
//
// Extraction never reorders the remaining arguments, never looks past
// "--", and removes an option together with its value or not at all.
package argv
