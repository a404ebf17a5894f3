package utils

import "testing"

func TestLeadWord(t *testing.T) {
	cases := []struct {
		line string
		want string
		ok   bool
	}{
		{"apple foo bar", "apple", true},
		{"  banana\tbaz", "banana", true},
		{"single", "single", true},
		{"single\n", "single", true},
		{"", "", false},
		{"   \t ", "", false},
		{"\n", "", false},
	}

	for _, tc := range cases {
		got, ok := LeadWord(tc.line)
		if got != tc.want || ok != tc.ok {
			t.Errorf("LeadWord(%q) = (%q, %v), want (%q, %v)", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTrimEntry(t *testing.T) {
	if got := TrimEntry("  apple foo \n"); got != "apple foo" {
		t.Errorf("TrimEntry: got %q", got)
	}
	if got := TrimEntry("apple  foo"); got != "apple  foo" {
		t.Errorf("TrimEntry should keep interior spacing, got %q", got)
	}
}

func TestIsAlphabetic(t *testing.T) {
	valid := []string{"apple", "Yellow", "naïve"}
	for _, s := range valid {
		if !IsAlphabetic(s) {
			t.Errorf("IsAlphabetic(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "utf8", "e-mail", "word.", "12dadf", "a b"}
	for _, s := range invalid {
		if IsAlphabetic(s) {
			t.Errorf("IsAlphabetic(%q) = true, want false", s)
		}
	}
}
