/*
Package spell finds misspelt words in a text buffer.

A checker scans whitespace-separated tokens and records every fully
alphabetic token that is missing from the reference dictionary, together with
its position in the buffer. Tokens carrying digits or punctuation are never
flagged; the dictionary lookup is case-insensitive so "BaNAna" is as correct
as "banana". Positions are rune offsets with an inclusive end.
*/
package spell

import (
	"strings"
	"unicode"

	"github.com/lexsift/lexsift/pkg/dictionary"
)

// Misspelling is one flagged word with its [Start, End] range in the
// scanned buffer. End is inclusive.
type Misspelling struct {
	Word        string
	Start       int
	End         int
	Suggestions []string
}

// Checker accumulates misspellings across Check calls.
type Checker struct {
	dict         *dictionary.Dict
	misspellings []Misspelling
	suggestLimit int
}

// NewChecker creates a checker over the given dictionary.
func NewChecker(dict *dictionary.Dict) *Checker {
	return &Checker{
		dict:         dict,
		suggestLimit: 8,
	}
}

// Check scans the buffer and records misspellings. Word boundaries are
// spaces, tabs and newlines; anything else is part of the token.
func (c *Checker) Check(buffer string) {
	var wordBuf strings.Builder
	isProperWord := true
	startPos := 0
	pos := 0

	for _, r := range buffer {
		if r == ' ' || r == '\t' || r == '\n' {
			if wordBuf.Len() > 0 && isProperWord {
				c.checkWord(wordBuf.String(), startPos, pos-1)
			}
			wordBuf.Reset()
			startPos = pos + 1
			isProperWord = true
		} else {
			wordBuf.WriteRune(r)
			isProperWord = isProperWord && unicode.IsLetter(r)
		}
		pos++
	}

	if wordBuf.Len() > 0 && isProperWord {
		c.checkWord(wordBuf.String(), startPos, pos-1)
	}
}

// checkWord records the word unless the dictionary knows it.
func (c *Checker) checkWord(word string, start, end int) {
	if c.dict.ContainsFold(word) {
		return
	}
	c.misspellings = append(c.misspellings, Misspelling{
		Word:  word,
		Start: start,
		End:   end,
	})
}

// Misspellings returns everything flagged so far, in buffer order.
func (c *Checker) Misspellings() []Misspelling {
	return c.misspellings
}

// Reset clears accumulated misspellings for a fresh scan.
func (c *Checker) Reset() {
	c.misspellings = c.misspellings[:0]
}

// Annotate fills in suggestions for every flagged misspelling.
func (c *Checker) Annotate() {
	for i := range c.misspellings {
		c.misspellings[i].Suggestions = Suggest(c.dict, c.misspellings[i].Word, c.suggestLimit)
	}
}
