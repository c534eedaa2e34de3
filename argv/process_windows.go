//go:build windows

package argv

import (
	"golang.org/x/sys/windows"
)

// FromProcess builds a Store from the raw command line of the running
// process, as returned by GetCommandLineW, so that quoting is interpreted
// by this package rather than by the Go runtime.
func FromProcess(opts ...Option) (*Store, error) {
	raw := windows.UTF16PtrToString(windows.GetCommandLine())
	return Parse(raw, opts...)
}
