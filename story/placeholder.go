// Package story fills placeholders in story text with dictionary words and
// lays the result out in fixed width lines.
package story

import (
	"madlibs/dictionary"
)

// Result describes what happened to a single story token.
type Result struct {
	Kind Kind
	// Key is set for everything that looked like a placeholder.
	Key string
	// Punct is trailing punctuation of "[key]p" placeholder, 0 otherwise.
	Punct byte
	// Text is the word to put into the story.
	Text string
}

// Resolver substitutes placeholders. Values are taken from the working
// queue, keys are validated against snapshot of the complete dictionary.
type Resolver struct {
	queue    *dictionary.Queue
	snapshot dictionary.Snapshot
}

func NewResolver(queue *dictionary.Queue, snapshot dictionary.Snapshot) *Resolver {
	return &Resolver{queue: queue, snapshot: snapshot}
}

// Resolve never fails. Unknown keys are left as is, known keys without
// remaining value become "[key]" and lose trailing punctuation.
func (r *Resolver) Resolve(token string) Result {
	key, punct, ok := parsePlaceholder(token)
	if !ok {
		return Result{Kind: KindPlain, Text: token}
	}
	if !r.snapshot.IsValidKey(key) {
		return Result{Kind: KindUnknown, Key: key, Punct: punct, Text: token}
	}
	value, found := r.queue.TakeMatching(key)
	if !found {
		return Result{Kind: KindUnresolved, Key: key, Punct: punct, Text: "[" + key + "]"}
	}
	if punct != 0 {
		value += string(punct)
	}
	return Result{Kind: KindResolved, Key: key, Punct: punct, Text: value}
}

// parsePlaceholder recognizes "[key]" and "[key]p" where p is a single ASCII
// punctuation byte.
func parsePlaceholder(token string) (key string, punct byte, ok bool) {
	n := len(token)
	if n < 2 || token[0] != '[' {
		return "", 0, false
	}
	if token[n-1] == ']' {
		return token[1 : n-1], 0, true
	}
	if n >= 3 && token[n-2] == ']' && isPunct(token[n-1]) {
		return token[1 : n-2], token[n-1], true
	}
	return "", 0, false
}

// isPunct matches C locale ispunct: printable, not space, not alphanumeric.
func isPunct(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
	case b >= ':' && b <= '@':
	case b >= '[' && b <= '`':
	case b >= '{' && b <= '~':
	default:
		return false
	}
	return true
}
