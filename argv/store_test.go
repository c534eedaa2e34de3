//nolint:testpackage // using package name 'argv' to access unexported fields for testing
package argv

import (
	"errors"
	"slices"
	"testing"
)

// countingAllocator records arena traffic so tests can check the
// single-allocation lifecycle.
type countingAllocator struct {
	allocs, frees int
	lastSize      int
}

func (c *countingAllocator) Alloc(n int) ([]byte, error) {
	c.allocs++
	c.lastSize = n
	return make([]byte, n), nil
}

func (c *countingAllocator) Free([]byte) { c.frees++ }

func TestParseBasic(t *testing.T) {
	args, err := Parse(`"c:\foo\bar\snafu.exe" -v "x y"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer args.Dispose()

	if args.Count() != 3 {
		t.Errorf("Expected 3 arguments, got %d", args.Count())
	}
	if got := args.Program(); got != `c:\foo\bar\snafu.exe` {
		t.Errorf("Expected program path, got %q", got)
	}
	if got := args.Arg(2); got != "x y" {
		t.Errorf("Expected 'x y', got %q", got)
	}
	if got := args.Basename(); got != "snafu" {
		t.Errorf("Expected basename 'snafu', got %q", got)
	}
	if !slices.Equal(args.Args(), []string{`c:\foo\bar\snafu.exe`, "-v", "x y"}) {
		t.Errorf("unexpected Args: %q", args.Args())
	}
}

func TestBuildSingleAllocation(t *testing.T) {
	alloc := &countingAllocator{}
	line := "prog --n 153 rest"

	args, err := Parse(line, WithAllocator(alloc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, maxBytes := Bounds(len(line))
	if alloc.allocs != 1 || alloc.lastSize != maxBytes {
		t.Errorf("Expected one arena of %d bytes, got %d allocs (last %d)", maxBytes, alloc.allocs, alloc.lastSize)
	}

	args.Int("--n")
	args.Dispose()
	if alloc.frees != 1 {
		t.Errorf("Expected exactly one Free, got %d", alloc.frees)
	}
}

func TestBuildOutOfMemory(t *testing.T) {
	args, err := Parse("prog with a fairly long command line", WithAllocator(LimitAllocator(8)))
	if err == nil {
		t.Fatal("Expected out-of-memory error")
	}
	if args != nil {
		t.Error("Expected no store on failure")
	}
	if !IsType(err, ErrorTypeOutOfMemory) {
		t.Errorf("Expected ErrorTypeOutOfMemory, got %v", err)
	}
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Expected errors.Is(err, ErrOutOfMemory), got %v", err)
	}
}

func TestBuildFailureLeavesStoreReusable(t *testing.T) {
	var s Store
	s.alloc = LimitAllocator(4)
	if err := s.Build("prog a b c"); err == nil {
		t.Fatal("Expected out-of-memory error")
	}

	// Nothing was built, so a retry with room succeeds
	s.alloc = LimitAllocator(1 << 10)
	if err := s.Build("prog a b c"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if s.Count() != 4 {
		t.Errorf("Expected 4 arguments, got %d", s.Count())
	}
	s.Dispose()
}

func TestShortArenaIsOutOfMemory(t *testing.T) {
	_, err := Parse("prog a", WithAllocator(shortAllocator{}))
	if !IsType(err, ErrorTypeOutOfMemory) {
		t.Fatalf("Expected ErrorTypeOutOfMemory, got %v", err)
	}
}

type shortAllocator struct{}

func (shortAllocator) Alloc(n int) ([]byte, error) { return make([]byte, n-1), nil }
func (shortAllocator) Free([]byte)                 {}

func TestLifecycleContract(t *testing.T) {
	args, err := Parse("prog a")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assertPanics(t, "build twice", func() { _ = args.Build("prog b") })

	args.Dispose()
	assertPanics(t, "dispose twice", func() { args.Dispose() })
	assertPanics(t, "use after dispose", func() { args.Count() })
	assertPanics(t, "build after dispose", func() { _ = args.Build("prog") })

	var empty Store
	assertPanics(t, "use before build", func() { empty.Args() })
	assertPanics(t, "dispose before build", func() { empty.Dispose() })
}

func TestArgIndexContract(t *testing.T) {
	args := FromArgv([]string{"prog", "a"})
	assertPanics(t, "negative index", func() { args.Arg(-1) })
	assertPanics(t, "index past count", func() { args.Arg(2) })
}

func TestFromArgvMutatesInPlace(t *testing.T) {
	raw := []string{"prog", "-v", "file"}
	args := FromArgv(raw)

	if !args.Bool("-v") {
		t.Fatal("Expected -v to be found")
	}
	if !slices.Equal(raw, []string{"prog", "file", ""}) {
		t.Errorf("Expected caller slice to be compacted in place, got %q", raw)
	}
	args.Dispose()
}

func TestFromArgvEmpty(t *testing.T) {
	args := FromArgv(nil)
	if args.Count() != 0 || args.Program() != "" || args.Basename() != "" {
		t.Errorf("Expected empty store, got %q", args.Args())
	}
	if len(args.Positional()) != 0 {
		t.Errorf("Expected no positional arguments")
	}
	if args.Find("-v") != -1 {
		t.Errorf("Expected nothing to be found")
	}
}

func TestFromProcess(t *testing.T) {
	args, err := FromProcess()
	if err != nil {
		t.Fatalf("FromProcess failed: %v", err)
	}
	defer args.Dispose()
	if args.Count() < 1 {
		t.Fatal("Expected at least the program name")
	}
	if args.Basename() == "" {
		t.Error("Expected a non-empty basename for the test binary")
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{`c:\foo\bar\snafu.exe`, "snafu"},
		{"/usr/local/bin/tool", "tool"},
		{"tool.tar.gz", "tool.tar"},
		{".bashrc", ".bashrc"},
		{`C:prog.exe`, "prog"},
		{`dir/`, ""},
		{"", ""},
		{"plain", "plain"},
		{`a.b\c`, "c"},
	}
	for _, tt := range tests {
		args := FromArgv([]string{tt.path})
		if got := args.Basename(); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	args, err := Parse("prog -v a")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c := args.Clone()
	args.Dispose()

	if !c.Bool("-v") {
		t.Fatal("Expected clone to still see -v")
	}
	if !slices.Equal(c.Args(), []string{"prog", "a"}) {
		t.Errorf("unexpected clone args %q", c.Args())
	}
}

func TestDisposeRecyclesArena(t *testing.T) {
	// A second store may reuse the first arena; its tokens must not bleed
	for k := 0; k < 10; k++ {
		first, err := Parse("prog alpha beta gamma")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		first.Dispose()

		second, err := Parse("p x")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if !slices.Equal(second.Args(), []string{"p", "x"}) {
			t.Fatalf("unexpected args after reuse: %q", second.Args())
		}
		second.Dispose()
	}
}
