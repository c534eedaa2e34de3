package argv

import (
	"strings"

	"github.com/dzonerzy/go-argv/internal/pool"
)

type storeState uint8

const (
	stateEmpty storeState = iota
	stateBuilt            // tokenized into an owned arena
	stateWrapped          // wrapping a caller-owned argv
	stateDisposed
)

// Store owns a parsed command line and exposes it argv-style: a live count
// and an ordered list of arguments, program name first. Options are pulled
// out with Find, Bool, Int and String, which shrink the list in place.
//
// A Store is built once and disposed once. It is not safe for concurrent
// use; extract options during single-threaded startup.
type Store struct {
	v     []string // backing slots; v[:count] are live, the rest are ""
	count int

	arena []byte
	slots *[]string
	alloc Allocator
	state storeState

	base    string
	hasBase bool
}

// Option configures a Store.
type Option func(*Store)

// WithAllocator sets the allocator used for the token arena.
func WithAllocator(a Allocator) Option {
	return func(s *Store) { s.alloc = a }
}

// Parse tokenizes raw into a new Store.
func Parse(raw string, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Build(raw); err != nil {
		return nil, err
	}
	return s, nil
}

// FromArgv wraps an existing argument vector without tokenizing it.
// Removals operate directly on args, so the caller's slice is mutated.
func FromArgv(args []string, opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	s.v = args
	s.count = len(args)
	s.state = stateWrapped
	return s
}

// Build tokenizes raw into one arena sized up front from Bounds. On
// allocation failure the store is left unbuilt and an ErrorTypeOutOfMemory
// error is returned. Building a store twice panics.
func (s *Store) Build(raw string) error {
	if s.state != stateEmpty {
		contractf("Build called on a store that was already built")
	}
	if s.alloc == nil {
		s.alloc = DefaultAllocator
	}

	maxTokens, maxBytes := Bounds(len(raw))
	arena, err := s.alloc.Alloc(maxBytes)
	if err != nil {
		return NewError(ErrorTypeOutOfMemory, "cannot allocate argument arena").WithCause(err)
	}
	if len(arena) < maxBytes {
		s.alloc.Free(arena)
		return NewError(ErrorTypeOutOfMemory, "allocator returned a short arena").WithCause(ErrOutOfMemory)
	}

	slots := pool.GetStringSlice()
	if cap(*slots) < maxTokens {
		*slots = make([]string, 0, maxTokens)
	}
	tokens := tokenize(raw, arena, *slots)

	s.arena = arena
	s.slots = slots
	s.count = len(tokens)
	s.v = tokens[:len(tokens)+1] // sentinel slot
	s.v[s.count] = ""
	s.state = stateBuilt
	return nil
}

// Dispose releases the arena. Every string obtained from the store without
// copying becomes invalid. Disposing twice panics.
func (s *Store) Dispose() {
	switch s.state {
	case stateBuilt:
		s.alloc.Free(s.arena)
		*s.slots = (*s.slots)[:cap(*s.slots)]
		pool.PutStringSlice(s.slots)
		s.arena, s.slots = nil, nil
	case stateWrapped:
	default:
		contractf("Dispose called on a store that is not built")
	}
	s.v = nil
	s.count = 0
	s.base, s.hasBase = "", false
	s.state = stateDisposed
}

func (s *Store) live() {
	if s.state != stateBuilt && s.state != stateWrapped {
		contractf("use of a store that is not built or already disposed")
	}
}

// Count returns the number of live arguments, program name included.
func (s *Store) Count() int {
	s.live()
	return s.count
}

// Arg returns argument i. It panics unless 0 <= i < Count().
func (s *Store) Arg(i int) string {
	s.live()
	if i < 0 || i >= s.count {
		contractf("argument index out of range")
	}
	return s.v[i]
}

// Args returns the live arguments. The slice aliases the store and changes
// as options are removed.
func (s *Store) Args() []string {
	s.live()
	return s.v[:s.count]
}

// Program returns argument 0, or "" for an empty wrapped argv.
func (s *Store) Program() string {
	s.live()
	if s.count == 0 {
		return ""
	}
	return s.v[0]
}

// Basename returns the program name without directory or extension.
// Both / and \ separate directories, and a drive prefix such as c: is
// dropped. A leading dot is not treated as an extension.
func (s *Store) Basename() string {
	s.live()
	if !s.hasBase {
		s.base = stem(s.Program())
		s.hasBase = true
	}
	return s.base
}

func stem(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if c := path[i]; c == '/' || c == '\\' || c == ':' {
			path = path[i+1:]
			break
		}
	}
	for i := len(path) - 1; i > 0; i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

// Clone returns an independent copy of the live arguments. The copy owns
// its strings and does not need the original to stay alive.
func (s *Store) Clone() *Store {
	s.live()
	args := make([]string, s.count)
	for i, a := range s.v[:s.count] {
		args[i] = strings.Clone(a)
	}
	c := FromArgv(args)
	c.alloc = s.alloc
	return c
}
