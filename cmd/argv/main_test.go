package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-argv/argv"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runTool(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestSplitArgument(t *testing.T) {
	r := runTool(t, "", "split", `foo.exe "a b" c\\"d"`)
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.stderr)
	}
	want := "[0] \"foo.exe\"\n[1] \"a b\"\n[2] \"c\\\\d\"\n"
	if r.stdout != want {
		t.Errorf("got %q, want %q", r.stdout, want)
	}
}

func TestSplitStdinJSON(t *testing.T) {
	r := runTool(t, "p \"x y\"\r\nq\n", "split", "--format", "json")
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.stderr)
	}
	var got []splitResult
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", r.stdout, err)
	}
	if len(got) != 2 || !slices.Equal(got[0].Tokens, []string{"p", "x y"}) || !slices.Equal(got[1].Tokens, []string{"q"}) {
		t.Errorf("unexpected results %+v", got)
	}
}

func TestSplitDebugLogsGoToStderr(t *testing.T) {
	r := runTool(t, "", "split", "--log-level", "debug", "p a")
	if !strings.Contains(r.stderr, "[DEBUG]") {
		t.Errorf("expected debug log on stderr, got %q", r.stderr)
	}
	if strings.Contains(r.stdout, "DEBUG") {
		t.Errorf("debug log leaked to stdout: %q", r.stdout)
	}
}

func TestExtract(t *testing.T) {
	r := runTool(t, "", "extract", "--format", "json",
		"--bool=-v", "--bool=-q", "--int=--jobs", "--string=--out", "--string=--log",
		"--", `tool.exe -v --jobs 0x10 --out "C:\Build Out" src -- -v`)
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.stderr)
	}
	var got extractResult
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", r.stdout, err)
	}
	if got.Basename != "tool" || !got.Bools["-v"] || got.Bools["-q"] {
		t.Errorf("unexpected bools/basename: %+v", got)
	}
	if got.Ints["--jobs"] != 16 || got.Strings["--out"] != `C:\Build Out` {
		t.Errorf("unexpected values: %+v", got)
	}
	if !slices.Equal(got.Missing, []string{"--log"}) {
		t.Errorf("unexpected missing list %q", got.Missing)
	}
	if !slices.Equal(got.Remaining, []string{"tool.exe", "src", "--", "-v"}) {
		t.Errorf("unexpected remaining %q", got.Remaining)
	}
	if !slices.Equal(got.Positional, []string{"src", "-v"}) {
		t.Errorf("unexpected positional %q", got.Positional)
	}
}

func TestExtractFromArgvAndStdin(t *testing.T) {
	r := runTool(t, "", "extract", "--string=--name", "--", "prog", "--name", "a b", "rest")
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, `--name = "a b"`) || !strings.Contains(r.stdout, `remaining: ["prog" "rest"]`) {
		t.Errorf("unexpected text output %q", r.stdout)
	}

	r = runTool(t, "prog -x 5\r\n", "extract", "--format", "yaml", "--int=-x")
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.stderr)
	}
	var got extractResult
	if err := yaml.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("invalid YAML %q: %v", r.stdout, err)
	}
	if got.Ints["-x"] != 5 || !slices.Equal(got.Remaining, []string{"prog"}) {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestExtractStrict(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown option", []string{"--bool=--verbose", "--", "prog --verbos"}, "Did you mean '--verbose'?"},
		{"missing value", []string{"--string=--out", "--", "prog --out"}, "requires a value"},
		{"invalid integer", []string{"--int=--n", "--", "prog --n abc"}, "expects an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"extract", "--strict"}, tt.args...)
			r := runTool(t, "", args...)
			if r.code != 2 {
				t.Errorf("exit %d, want 2", r.code)
			}
			if !strings.Contains(r.stderr, tt.wantErr) {
				t.Errorf("stderr %q does not mention %q", r.stderr, tt.wantErr)
			}
		})
	}

	// Without --strict leftovers are reported, not rejected
	r := runTool(t, "", "extract", "--int=--n", "--", "prog --n abc --verbos")
	if r.code != 0 {
		t.Errorf("exit %d: %s", r.code, r.stderr)
	}
}

func TestQuote(t *testing.T) {
	r := runTool(t, "", "quote", "--", `C:\Program Files\x.exe`, "a b", `say "hi"`, "")
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.stderr)
	}
	want := `"C:\Program Files\x.exe" "a b" "say \"hi\"" ""`
	if strings.TrimSuffix(r.stdout, "\n") != want {
		t.Errorf("got %q, want %q", r.stdout, want)
	}

	if r := runTool(t, "", "quote", "--", `bad"prog`); r.code != 2 {
		t.Errorf("quoted program name: exit %d, want 2", r.code)
	}
	if r := runTool(t, "", "quote"); r.code != 2 {
		t.Errorf("no arguments: exit %d, want 2", r.code)
	}
}

func TestVerify(t *testing.T) {
	r := runTool(t, "", "verify", filepath.Join("testdata", "vectors.yaml"))
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stderr, "11 vectors passed") {
		t.Errorf("unexpected summary %q", r.stderr)
	}

	r = runTool(t, "", "verify", filepath.Join("testdata", "vectors.yaml"), filepath.Join("testdata", "broken.yaml"))
	if r.code != 3 {
		t.Errorf("exit %d, want 3", r.code)
	}
	if !strings.Contains(r.stderr, "wrong expectation") || !strings.Contains(r.stderr, "1 of 12 vectors failed") {
		t.Errorf("unexpected report %q", r.stderr)
	}
	if !strings.Contains(r.stderr, "[-") || !strings.Contains(r.stderr, "{+") {
		t.Errorf("expected a token diff, got %q", r.stderr)
	}

	if r := runTool(t, "", "verify", filepath.Join("testdata", "missing.yaml")); r.code != 1 {
		t.Errorf("missing file: exit %d, want 1", r.code)
	}
}

func TestVersion(t *testing.T) {
	r := runTool(t, "", "version", "--format", "yaml")
	if r.code != 0 || r.stdout != "version: "+version+"\n" {
		t.Errorf("unexpected version output (%d) %q", r.code, r.stdout)
	}
}

func TestMisuse(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag":   {"split", "--nope", "x"},
		"bad format":     {"split", "--format", "xml", "x"},
		"bad color":      {"split", "--color", "sometimes", "x"},
		"too many args":  {"split", "a", "b"},
		"version args":   {"version", "x"},
		"missing config": {"--config", filepath.Join(t.TempDir(), "none.yaml"), "version"},
	} {
		t.Run(name, func(t *testing.T) {
			if r := runTool(t, "", args...); r.code != 2 {
				t.Errorf("exit %d, want 2 (stderr %q)", r.code, r.stderr)
			}
		})
	}
}

func TestConfigPrecedence(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "argv.yaml")
	if err := os.WriteFile(cfg, []byte("format: json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := runTool(t, "", "--config", cfg, "version")
	if !strings.HasPrefix(r.stdout, "{") {
		t.Errorf("config file format not applied: %q", r.stdout)
	}

	t.Setenv("ARGV_FORMAT", "yaml")
	r = runTool(t, "", "--config", cfg, "version")
	if !strings.HasPrefix(r.stdout, "version:") {
		t.Errorf("environment should override config file: %q", r.stdout)
	}

	r = runTool(t, "", "--config", cfg, "--format", "text", "version")
	if !strings.HasPrefix(r.stdout, "argv version") {
		t.Errorf("flag should override environment: %q", r.stdout)
	}
}

func TestExitCodes(t *testing.T) {
	codes := newExitCodes()
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{&exitError{Code: 7}, 7},
		{argv.NewError(argv.ErrorTypeUnknownOption, "x"), 2},
		{argv.NewError(argv.ErrorTypeOutOfMemory, "x"), 1},
		{misuse(errors.New("bad")), 2},
	}
	for _, tt := range tests {
		if got := codes.resolve(tt.err); got != tt.want {
			t.Errorf("resolve(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
	if misuse(nil) != nil {
		t.Error("misuse(nil) should be nil")
	}
}
