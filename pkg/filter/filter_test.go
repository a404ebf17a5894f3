package filter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexsift/lexsift/pkg/dictionary"
)

func newDict(words ...string) *dictionary.Dict {
	d := dictionary.New()
	for _, w := range words {
		d.Add(w)
	}
	return d
}

func TestRunKeepsMatchingLeadWords(t *testing.T) {
	d := newDict("apple", "banana")
	lines := []string{"apple foo", "pear bar", "banana baz"}

	res, err := Run(d, lines, 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := Render(res.Kept); got != "apple foo\nbanana baz\n" {
		t.Errorf("output = %q, want %q", got, "apple foo\nbanana baz\n")
	}
	if res.Scanned != 3 || res.Dropped != 1 {
		t.Errorf("stats = %+v, want Scanned=3 Dropped=1", res)
	}
}

func TestRunPreservesOrderWithoutDedup(t *testing.T) {
	d := newDict("apple")
	lines := []string{"apple one", "apple two", "apple one"}

	res, err := Run(d, lines, 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"apple one", "apple two", "apple one"}
	if len(res.Kept) != len(want) {
		t.Fatalf("kept %d lines, want %d", len(res.Kept), len(want))
	}
	for i, line := range want {
		if res.Kept[i] != line {
			t.Errorf("kept[%d] = %q, want %q", i, res.Kept[i], line)
		}
	}
}

func TestRunZeroCount(t *testing.T) {
	d := newDict("apple")
	res, err := Run(d, []string{"apple foo"}, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Kept) != 0 {
		t.Errorf("kept %d lines, want 0", len(res.Kept))
	}
	if Render(res.Kept) != "" {
		t.Errorf("N=0 must produce empty output, got %q", Render(res.Kept))
	}
}

func TestRunCountOutOfRange(t *testing.T) {
	d := newDict("apple")
	lines := []string{"apple foo", "apple bar"}

	if _, err := Run(d, lines, 3); !errors.Is(err, ErrCountOutOfRange) {
		t.Errorf("N > len: err = %v, want ErrCountOutOfRange", err)
	}
	if _, err := Run(d, lines, -1); !errors.Is(err, ErrCountOutOfRange) {
		t.Errorf("negative N: err = %v, want ErrCountOutOfRange", err)
	}
	// N equal to the exact length processes every entry.
	if _, err := Run(d, lines, 2); err != nil {
		t.Errorf("N == len: unexpected error %v", err)
	}
}

func TestRunBlankAndWhitespaceLines(t *testing.T) {
	d := newDict("apple")
	lines := []string{"", "   ", "apple foo"}

	res, err := Run(d, lines, 3)
	if err != nil {
		t.Fatalf("blank lines must not error: %v", err)
	}
	if len(res.Kept) != 1 || res.Kept[0] != "apple foo" {
		t.Errorf("kept = %v, want [apple foo]", res.Kept)
	}
}

func TestRunTrimsKeptLines(t *testing.T) {
	d := newDict("apple")
	res, err := Run(d, []string{"  apple foo  "}, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Kept[0] != "apple foo" {
		t.Errorf("kept[0] = %q, want trimmed line", res.Kept[0])
	}
}

func TestRunIsIdempotent(t *testing.T) {
	d := newDict("apple", "banana")
	lines := []string{"apple foo", "pear bar", "banana baz"}

	first, err := Run(d, lines, 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(d, lines, 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if Render(first.Kept) != Render(second.Kept) {
		t.Error("identical inputs must produce byte-identical output")
	}
}

func TestLoadSuggestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggestion_dict.txt")
	if err := os.WriteFile(path, []byte("apple foo\npear bar\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := LoadSuggestions(path)
	if err != nil {
		t.Fatalf("LoadSuggestions: %v", err)
	}
	if len(lines) != 2 || lines[0] != "apple foo" {
		t.Errorf("lines = %v", lines)
	}
}

func TestLoadSuggestionsMissingFile(t *testing.T) {
	if _, err := LoadSuggestions(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing suggestion file")
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggestion_dict_processed.txt")

	// Pre-seed with stale content: the write must truncate.
	if err := os.WriteFile(path, []byte("stale stale stale\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteOutput(path, []string{"apple foo", "banana baz"}); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "apple foo\nbanana baz\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestProbe(t *testing.T) {
	withThe := newDict("the", "apple")
	if got := Probe(withThe, "the"); got != "True" {
		t.Errorf("Probe = %q, want True", got)
	}
	without := newDict("apple")
	if got := Probe(without, "the"); got != "False" {
		t.Errorf("Probe = %q, want False", got)
	}
}
