package spell

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lexsift/lexsift/pkg/dictionary"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggest returns dictionary words close to a misspelt word, best first.
// Candidates come from trie subtree visits over progressively shorter
// lowercased prefixes of the input: words sharing a longer prefix rank
// higher, ties break on dictionary rank (load order). The input word itself
// is never suggested.
func Suggest(dict *dictionary.Dict, word string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return nil
	}

	trie := dict.Trie()
	runes := []rune(lower)
	seen := map[string]bool{lower: true}
	var out []string

	for plen := len(runes); plen >= 1 && len(out) < limit; plen-- {
		prefix := string(runes[:plen])

		type candidate struct {
			word string
			rank int
		}
		var batch []candidate

		err := trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
			w := string(p)
			if seen[w] {
				return nil
			}
			rank, ok := item.(int)
			if !ok {
				log.Errorf("Unknown item type: %T for word %s", item, p)
				return nil
			}
			seen[w] = true
			batch = append(batch, candidate{word: w, rank: rank})
			return nil
		})
		if err != nil {
			log.Errorf("Error visiting trie subtree: %v", err)
		}

		// Same shared-prefix length, so dictionary rank decides.
		sort.Slice(batch, func(i, j int) bool {
			return batch[i].rank < batch[j].rank
		})
		for _, c := range batch {
			if len(out) >= limit {
				break
			}
			out = append(out, c.word)
		}
	}

	return out
}
