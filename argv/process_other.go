//go:build !windows

package argv

import (
	"os"
)

// FromProcess builds a Store from the running process's arguments. Outside
// Windows the argument vector is already split, so os.Args is wrapped as-is.
func FromProcess(opts ...Option) (*Store, error) {
	args := make([]string, len(os.Args))
	copy(args, os.Args)
	return FromArgv(args, opts...), nil
}
