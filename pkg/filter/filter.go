/*
Package filter implements the suggestion-list filter.

Given a reference dictionary and an ordered list of suggestion lines, the
filter keeps the first N lines whose lead word (first whitespace-delimited
token) is an exact member of the dictionary. Kept lines are trimmed and
written newline-terminated in their original order, in a single write.

Lines with no lead word (blank lines) are treated as not-found rather than
an error. Asking for more lines than the input holds is an error; the filter
fails fast and writes nothing.
*/
package filter

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lexsift/lexsift/internal/utils"
	"github.com/lexsift/lexsift/pkg/dictionary"
)

// ErrCountOutOfRange is returned when N exceeds the number of suggestion lines.
var ErrCountOutOfRange = errors.New("count exceeds number of suggestion lines")

// Result holds the outcome of a single filter run.
type Result struct {
	Kept    []string
	Scanned int
	Dropped int
}

// LoadSuggestions reads the suggestion file into raw lines, order preserved.
// No trimming happens here; entries are trimmed individually when kept.
func LoadSuggestions(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suggestions %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read suggestions %s: %w", path, err)
	}

	log.Debugf("Loaded %d suggestion lines from %s", len(lines), path)
	return lines, nil
}

// Run filters the first n suggestion lines against the dictionary.
// Order is preserved and nothing is deduplicated; a line survives only when
// its lead word is an exact dictionary member.
func Run(dict *dictionary.Dict, lines []string, n int) (Result, error) {
	if n < 0 {
		return Result{}, fmt.Errorf("invalid count %d: %w", n, ErrCountOutOfRange)
	}
	if n > len(lines) {
		return Result{}, fmt.Errorf("requested %d of %d lines: %w", n, len(lines), ErrCountOutOfRange)
	}

	res := Result{Scanned: n}
	for i := 0; i < n; i++ {
		lead, ok := utils.LeadWord(lines[i])
		if !ok || !dict.Contains(lead) {
			res.Dropped++
			continue
		}
		res.Kept = append(res.Kept, utils.TrimEntry(lines[i]))
	}

	log.Debugf("Filter kept %d of %d lines", len(res.Kept), n)
	return res, nil
}

// Render joins kept lines into the output payload, each newline-terminated.
func Render(kept []string) string {
	if len(kept) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range kept {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteOutput writes the filtered lines to path, creating or truncating it.
// The file is written once at the end of the run, never appended.
func WriteOutput(path string, kept []string) error {
	if err := os.WriteFile(path, []byte(Render(kept)), 0644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", path, err)
	}
	return nil
}

// Probe reports membership of a single word using Python-style boolean
// literals. The original tool printed `"the" in dict` before every run and
// downstream scripts grep for the exact True/False spelling.
func Probe(dict *dictionary.Dict, word string) string {
	if dict.Contains(word) {
		return "True"
	}
	return "False"
}
