package argv

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-argv/internal/fuzzy"
)

// EndOfOptions is the sentinel after which no token is recognized as an
// option.
const EndOfOptions = "--"

// Find returns the index of the leftmost argument equal to option, or -1.
// The scan starts after the program name and stops at the first "--", so
// an option is never found at or beyond the sentinel. Matching is exact;
// there is no prefix or abbreviation matching.
func (s *Store) Find(option string) int {
	s.live()
	for i := 1; i < s.count; i++ {
		switch s.v[i] {
		case EndOfOptions:
			return -1
		case option:
			return i
		}
	}
	return -1
}

// RemoveAt removes argument i, shifting later arguments left by one and
// blanking the vacated last slot. The program name cannot be removed:
// RemoveAt panics unless 0 < i < Count().
func (s *Store) RemoveAt(i int) {
	s.live()
	if i <= 0 || i >= s.count {
		contractf("RemoveAt index out of range")
	}
	copy(s.v[i:s.count-1], s.v[i+1:s.count])
	s.count--
	s.v[s.count] = ""
}

// removePair removes the option at i together with its value at i+1. Both
// indices are checked before anything is touched, so either both tokens go
// or the store is unchanged.
func (s *Store) removePair(i int) {
	if i <= 0 || i+1 >= s.count {
		contractf("option/value pair index out of range")
	}
	s.RemoveAt(i)
	s.RemoveAt(i) // the value shifted down into i
}

// Bool reports whether the flag option is present and, if so, removes it.
func (s *Store) Bool(option string) bool {
	i := s.Find(option)
	if i < 0 {
		return false
	}
	s.RemoveAt(i)
	return true
}

// Int looks up option and parses the argument after it with ParseInt. On
// success both arguments are removed. A missing or malformed value reports
// not found and leaves the store untouched.
func (s *Store) Int(option string) (int64, bool) {
	i := s.Find(option)
	if i < 0 || i+1 >= s.count {
		return 0, false
	}
	n, err := ParseInt(s.v[i+1])
	if err != nil {
		return 0, false
	}
	s.removePair(i)
	return n, true
}

// String looks up option and returns the argument after it verbatim,
// removing both. Without a following argument nothing is removed. The
// returned value is a copy and stays valid after Dispose.
//
// The value is taken as-is even when it is "--" or looks like an option.
func (s *Store) String(option string) (string, bool) {
	i := s.Find(option)
	if i < 0 || i+1 >= s.count {
		return "", false
	}
	value := strings.Clone(s.v[i+1])
	s.removePair(i)
	return value, true
}

// Positional returns a copy of the live arguments after the program name,
// with the first "--" sentinel left out. The store itself keeps the
// sentinel.
func (s *Store) Positional() []string {
	s.live()
	if s.count <= 1 {
		return []string{}
	}
	out := make([]string, 0, s.count-1)
	skipped := false
	for _, a := range s.v[1:s.count] {
		if !skipped && a == EndOfOptions {
			skipped = true
			continue
		}
		out = append(out, a)
	}
	return out
}

// Unknown reports the first remaining argument before "--" that looks like
// an option, which usually means it was never extracted because it is
// misspelt. A lone "-" and negative numbers are positional. The returned
// error carries a suggestion when one of known is close enough.
func (s *Store) Unknown(known ...string) error {
	s.live()
	for i := 1; i < s.count; i++ {
		a := s.v[i]
		if a == EndOfOptions {
			return nil
		}
		if !looksLikeOption(a) {
			continue
		}
		err := NewError(ErrorTypeUnknownOption, fmt.Sprintf("unknown option: %s", a)).WithOption(strings.Clone(a))
		if best := fuzzy.FindBestOption(a, known, 2); best != "" {
			_ = err.WithSuggestion(fmt.Sprintf("Did you mean '%s'?", best))
		}
		return err
	}
	return nil
}

func looksLikeOption(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	_, err := ParseInt(a)
	return err != nil
}
