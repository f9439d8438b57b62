// Package dictionary holds words supplied for story placeholders.
//
// Entries are consumed strictly in file order: taking a value for a key
// drops every entry in front of the match, so skipped entries can never be
// used later. Validity of a key is decided by a Snapshot which is never
// consumed.
package dictionary

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Queue is the ordered supply of entries not yet consumed. It is not safe
// for concurrent use.
type Queue struct {
	entries []Entry
	head    int
}

func NewQueue(entries []Entry) *Queue {
	return &Queue{entries: append([]Entry(nil), entries...)}
}

// TakeMatching scans the queue from the front for key. Every entry examined
// is removed, the matched one included. When nothing matches the queue is
// left empty and ok is false.
func (q *Queue) TakeMatching(key string) (value string, ok bool) {
	for q.head < len(q.entries) {
		e := q.entries[q.head]
		q.head++
		if e.Key == key {
			return e.Value, true
		}
	}
	q.entries, q.head = nil, 0
	return "", false
}

// Len returns number of entries left.
func (q *Queue) Len() int {
	return len(q.entries) - q.head
}

// Remaining returns copy of entries left in order.
func (q *Queue) Remaining() []Entry {
	return append([]Entry(nil), q.entries[q.head:]...)
}

// Snapshot is read-only copy of the whole dictionary used to decide if a key
// is known at all.
type Snapshot struct {
	entries []Entry
}

func NewSnapshot(entries []Entry) Snapshot {
	return Snapshot{entries: append([]Entry(nil), entries...)}
}

// IsValidKey reports whether any entry of the dictionary has the key.
func (s Snapshot) IsValidKey(key string) bool {
	for _, e := range s.entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

func (s Snapshot) Len() int {
	return len(s.entries)
}
