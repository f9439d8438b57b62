package story

import (
	"testing"

	"madlibs/dictionary"
)

func newTestResolver(pairs ...string) *Resolver {
	var entries []dictionary.Entry
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, dictionary.Entry{Key: pairs[i], Value: pairs[i+1]})
	}
	return NewResolver(dictionary.NewQueue(entries), dictionary.NewSnapshot(entries))
}

func TestParsePlaceholder(t *testing.T) {
	tests := []struct {
		token     string
		wantKey   string
		wantPunct byte
		wantOK    bool
	}{
		{"[noun]", "noun", 0, true},
		{"[noun].", "noun", '.', true},
		{"[noun]?", "noun", '?', true},
		{"[noun]!", "noun", '!', true},
		{"[noun],", "noun", ',', true},
		{"[noun]]", "noun]", 0, true},
		{"[]", "", 0, true},
		{"[].", "", '.', true},
		{"[", "", 0, false},
		{"]", "", 0, false},
		{"[]x", "", 0, false},
		{"[noun]s", "", 0, false},
		{"[noun]1", "", 0, false},
		{"[noun", "", 0, false},
		{"noun]", "", 0, false},
		{"x[noun]", "", 0, false},
		{"[noun].,", "", 0, false},
		{"[noun]…", "", 0, false},
		{"", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			key, punct, ok := parsePlaceholder(tt.token)
			if ok != tt.wantOK || key != tt.wantKey || punct != tt.wantPunct {
				t.Errorf("parsePlaceholder(%q) = %q, %q, %v, want %q, %q, %v",
					tt.token, key, punct, ok, tt.wantKey, tt.wantPunct, tt.wantOK)
			}
		})
	}
}

func TestIsPunct(t *testing.T) {
	for b := range 256 {
		c := byte(b)
		want := c > ' ' && c < 0x7f &&
			!(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z')
		if got := isPunct(c); got != want {
			t.Errorf("isPunct(%#x) = %v, want %v", c, got, want)
		}
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("plain words are unchanged", func(t *testing.T) {
		r := newTestResolver("noun", "dog")
		for _, w := range []string{"The", "noun", "[", "]", "end.", "[noun"} {
			res := r.Resolve(w)
			if res.Kind != KindPlain || res.Text != w {
				t.Errorf("Resolve(%q) = %+v", w, res)
			}
		}
		// nothing consumed
		if res := r.Resolve("[noun]"); res.Text != "dog" {
			t.Errorf("Resolve([noun]) = %+v", res)
		}
	})

	t.Run("single entry resolves once", func(t *testing.T) {
		r := newTestResolver("noun", "dog")
		if res := r.Resolve("[noun]"); res.Kind != KindResolved || res.Text != "dog" || res.Key != "noun" {
			t.Errorf("first Resolve = %+v", res)
		}
		if res := r.Resolve("[noun]"); res.Kind != KindUnresolved || res.Text != "[noun]" {
			t.Errorf("second Resolve = %+v", res)
		}
	})

	t.Run("punctuation", func(t *testing.T) {
		r := newTestResolver("noun", "dog")
		if res := r.Resolve("[noun]!"); res.Kind != KindResolved || res.Text != "dog!" || res.Punct != '!' {
			t.Errorf("Resolve([noun]!) = %+v", res)
		}
		// unresolved placeholder loses punctuation
		if res := r.Resolve("[noun]?"); res.Kind != KindUnresolved || res.Text != "[noun]" || res.Punct != '?' {
			t.Errorf("Resolve([noun]?) = %+v", res)
		}
	})

	t.Run("unknown keys are unchanged", func(t *testing.T) {
		r := newTestResolver("noun", "dog")
		for _, w := range []string{"[verb]", "[verb].", "[Noun]", "[]", "[]."} {
			res := r.Resolve(w)
			if res.Kind != KindUnknown || res.Text != w {
				t.Errorf("Resolve(%q) = %+v", w, res)
			}
		}
		if res := r.Resolve("[noun]"); res.Text != "dog" {
			t.Errorf("unknown keys must not consume, got %+v", res)
		}
	})

	t.Run("consumption discards preceding entries", func(t *testing.T) {
		r := newTestResolver("adj", "red", "noun", "dog", "adj", "blue")
		if res := r.Resolve("[noun]"); res.Text != "dog" {
			t.Fatalf("Resolve([noun]) = %+v", res)
		}
		if res := r.Resolve("[adj]"); res.Kind != KindResolved || res.Text != "blue" {
			t.Errorf("Resolve([adj]) = %+v, want blue", res)
		}
		if res := r.Resolve("[adj]"); res.Kind != KindUnresolved {
			t.Errorf("Resolve([adj]) = %+v, want unresolved", res)
		}
		// key is still valid, queue is empty
		if res := r.Resolve("[noun]."); res.Kind != KindUnresolved || res.Text != "[noun]" {
			t.Errorf("Resolve([noun].) = %+v", res)
		}
	})

	t.Run("passed over key is not found", func(t *testing.T) {
		r := newTestResolver("adj", "red", "noun", "dog")
		r.Resolve("[noun]")
		if res := r.Resolve("[adj]"); res.Kind != KindUnresolved || res.Text != "[adj]" {
			t.Errorf("Resolve([adj]) = %+v", res)
		}
	})
}
