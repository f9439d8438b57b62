package dictionary

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"madlibs/config"
	"madlibs/text"
)

// ErrUnpairedKey is returned when dictionary ends with a key without value
// and policy does not allow to correct it.
var ErrUnpairedKey = errors.New("dictionary key has no value")

// Dictionary is the loaded word supply. Each story run starts its own
// consumption from the complete set of entries.
type Dictionary struct {
	entries []Entry
}

// Load reads alternating key/value words until the input is exhausted.
func Load(r io.Reader, unpaired config.UnpairedPolicy, log *zap.Logger) (*Dictionary, error) {
	var (
		d       = &Dictionary{}
		key     string
		haveKey bool
	)

	s := text.NewScanner(r)
	for word := range s.Words() {
		if !haveKey {
			key, haveKey = word, true
			continue
		}
		d.entries = append(d.entries, Entry{Key: key, Value: word})
		haveKey = false
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("unable to read dictionary: %w", err)
	}

	if haveKey {
		switch unpaired {
		case config.UnpairedPolicyPad:
			log.Warn("Last dictionary key has no value, using empty value", zap.String("key", key))
			d.entries = append(d.entries, Entry{Key: key})
		case config.UnpairedPolicyDrop:
			log.Warn("Last dictionary key has no value, ignoring", zap.String("key", key))
		default:
			return nil, fmt.Errorf("entry %d (%q): %w", len(d.entries)+1, key, ErrUnpairedKey)
		}
	}

	log.Debug("Dictionary loaded", zap.Int("entries", len(d.entries)))
	return d, nil
}

// New creates dictionary from entries, mostly useful for tests.
func New(entries ...Entry) *Dictionary {
	return &Dictionary{entries: append([]Entry(nil), entries...)}
}

// Start returns fresh working queue and validation snapshot for a single run.
func (d *Dictionary) Start() (*Queue, Snapshot) {
	return NewQueue(d.entries), NewSnapshot(d.entries)
}

func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns copy of all entries in file order.
func (d *Dictionary) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}
