// Package cli handles interactive input: the count prompt for filter runs
// and a word-check loop for testing dictionaries.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lexsift/lexsift/pkg/dictionary"
	"github.com/lexsift/lexsift/pkg/spell"
)

// CountPrompt is the exact prompt the original tool printed before reading N.
const CountPrompt = "num of elements"

// ReadCount prompts for the number of suggestion lines to process and parses
// one line of input as an integer. A non-numeric answer is an error; the
// caller is expected to fail fast.
func ReadCount(r io.Reader, w io.Writer) (int, error) {
	fmt.Fprint(w, CountPrompt)

	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read count: %w", err)
	}

	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", line, err)
	}
	return n, nil
}

// InputHandler processes words from stdin, reporting dictionary membership
// and suggestions for misses.
type InputHandler struct {
	dict         *dictionary.Dict
	suggestLimit int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(dict *dictionary.Dict, suggestLimit int) *InputHandler {
	return &InputHandler{
		dict:         dict,
		suggestLimit: suggestLimit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("lexsift CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to check it against the dictionary (Ctrl+C to exit):")

	for {
		log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput checks a single word and prints suggestions when it misses.
func (h *InputHandler) handleInput(word string) {
	h.requestCount++

	if strings.ContainsAny(word, " \t") {
		log.Errorf("Not a single word: %q", word)
		return
	}

	start := time.Now()
	found := h.dict.ContainsFold(word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if found {
		log.Printf("'%s' is in the dictionary", word)
		return
	}

	suggestions := spell.Suggest(h.dict, word, h.suggestLimit)
	if len(suggestions) == 0 {
		log.Warnf("'%s' not found, no suggestions", word)
		return
	}

	log.Printf("'%s' not found, %d suggestions:", word, len(suggestions))
	for i, s := range suggestions {
		rank := h.dict.Rank(s)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s)
		log.Printf("%2d. %-40s (rank: %6d)", i+1, clWord, rank)
	}
}
