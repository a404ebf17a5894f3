package dictionary

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the on-disk msgpack layout of a compiled dictionary.
// Words keep load order so ranks survive a save/load round trip.
type snapshot struct {
	Count   int      `msgpack:"n"`
	Words   []string `msgpack:"w"`
	Source  string   `msgpack:"src,omitempty"`
	SavedAt int64    `msgpack:"ts"`
}

// SaveSnapshot writes the dictionary to path as a msgpack snapshot.
func SaveSnapshot(d *Dict, path string) error {
	snap := snapshot{
		Count:   d.Len(),
		Words:   d.Words(),
		Source:  d.Source(),
		SavedAt: time.Now().Unix(),
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	log.Debugf("Saved snapshot with %d words to %s", snap.Count, path)
	return nil
}

// LoadSnapshot rebuilds a dictionary from a msgpack snapshot file.
func LoadSnapshot(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	if snap.Count != len(snap.Words) {
		return nil, fmt.Errorf("snapshot %s is corrupt: header says %d words, found %d",
			path, snap.Count, len(snap.Words))
	}

	d := New()
	d.source = path
	for _, word := range snap.Words {
		d.Add(word)
	}

	log.Debugf("Loaded snapshot with %d words from %s", d.Len(), path)
	return d, nil
}
