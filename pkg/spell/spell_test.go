package spell

import (
	"testing"

	"github.com/lexsift/lexsift/pkg/dictionary"
)

func testDict(words ...string) *dictionary.Dict {
	d := dictionary.New()
	for _, w := range words {
		d.Add(w)
	}
	return d
}

func newTestChecker() *Checker {
	return NewChecker(testDict("this", "word", "apple", "yellow", "some", "miss"))
}

func TestMisspellingsDetection(t *testing.T) {
	checker := newTestChecker()
	checker.Check("Ths word aple yelow soem . ? ;")

	if got := len(checker.Misspellings()); got != 4 {
		t.Errorf("found %d misspellings, want 4", got)
	}
}

func TestSpellcheckingEdgeCases(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"THS WORD APLE YELOW", 3},
		{"ths this", 1},
		{"....................a. 12dadf apple3 aple3", 0},
		{".mis", 0},
		{".miss", 0},
		{"miss.", 0},
	}

	for _, tc := range cases {
		checker := newTestChecker()
		checker.Check(tc.text)
		if got := len(checker.Misspellings()); got != tc.want {
			t.Errorf("Check(%q): %d misspellings, want %d", tc.text, got, tc.want)
		}
	}
}

func TestMisspellingPosition(t *testing.T) {
	checker := newTestChecker()
	checker.Check("mispeled word wor ")

	ms := checker.Misspellings()
	if len(ms) != 2 {
		t.Fatalf("found %d misspellings, want 2", len(ms))
	}
	if ms[0].Start != 0 || ms[0].End != 7 {
		t.Errorf("first range = (%d, %d), want (0, 7)", ms[0].Start, ms[0].End)
	}
	if ms[1].Start != 14 || ms[1].End != 16 {
		t.Errorf("second range = (%d, %d), want (14, 16)", ms[1].Start, ms[1].End)
	}
}

func TestMisspellingPositionAtEnd(t *testing.T) {
	checker := newTestChecker()
	checker.Check("mispeled")
	ms := checker.Misspellings()
	if len(ms) != 1 || ms[0].Start != 0 || ms[0].End != 7 {
		t.Fatalf("misspellings = %+v, want one at (0, 7)", ms)
	}

	checker.Reset()
	checker.Check("     mispeled")
	ms = checker.Misspellings()
	if len(ms) != 1 || ms[0].Start != 5 || ms[0].End != 12 {
		t.Fatalf("misspellings = %+v, want one at (5, 12)", ms)
	}
}

func TestMisspellingPreservesCase(t *testing.T) {
	checker := newTestChecker()
	checker.Check("MiSpELed")

	ms := checker.Misspellings()
	if len(ms) != 1 {
		t.Fatalf("found %d misspellings, want 1", len(ms))
	}
	if ms[0].Word != "MiSpELed" {
		t.Errorf("word = %q, want original casing preserved", ms[0].Word)
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	checker := newTestChecker()
	checker.Check("APPLE Yellow wOrD")
	if got := len(checker.Misspellings()); got != 0 {
		t.Errorf("found %d misspellings, want 0 (lookup is case-insensitive)", got)
	}
}

func TestSuggest(t *testing.T) {
	d := testDict("apple", "apples", "apply", "banana", "blue", "append")

	got := Suggest(d, "aple", 4)
	if len(got) == 0 {
		t.Fatal("expected suggestions for aple")
	}
	// "ap" words share the longest prefix with the input and arrive in
	// dictionary-rank order.
	want := []string{"apple", "apples", "apply", "append"}
	for i, w := range want {
		if i >= len(got) {
			t.Fatalf("suggestions = %v, want prefix of %v", got, want)
		}
		if got[i] != w {
			t.Errorf("suggestions[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestSuggestExcludesInputWord(t *testing.T) {
	d := testDict("apple", "apples")
	for _, s := range Suggest(d, "apple", 5) {
		if s == "apple" {
			t.Error("input word must not be suggested")
		}
	}
}

func TestSuggestRespectsLimit(t *testing.T) {
	d := testDict("apple", "apples", "apply", "append", "apt")
	if got := Suggest(d, "ap", 2); len(got) > 2 {
		t.Errorf("got %d suggestions, want at most 2", len(got))
	}
	if got := Suggest(d, "apple", 0); got != nil {
		t.Errorf("limit 0 should return nil, got %v", got)
	}
}

func TestAnnotate(t *testing.T) {
	checker := NewChecker(testDict("apple", "apples", "yellow"))
	checker.Check("aple")
	checker.Annotate()

	ms := checker.Misspellings()
	if len(ms) != 1 {
		t.Fatalf("found %d misspellings, want 1", len(ms))
	}
	if len(ms[0].Suggestions) == 0 {
		t.Error("Annotate left suggestions empty")
	}
}
