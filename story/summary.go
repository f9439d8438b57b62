package story

import (
	"go.uber.org/zap/zapcore"

	"madlibs/utils/debug"
)

// Summary keeps counters for a single run.
type Summary struct {
	Tokens     int
	Plain      int
	Resolved   int
	Unresolved int
	Unknown    int
	Lines      int
	Sentences  int
	// Left is number of dictionary entries remaining in the queue.
	Left int

	// Keys which were valid but had no value left, with number of hits.
	Misses map[string]int
	// Keys which are not in the dictionary at all.
	Strangers map[string]int
}

func newSummary() *Summary {
	return &Summary{
		Misses:    make(map[string]int),
		Strangers: make(map[string]int),
	}
}

func (s *Summary) count(res Result) {
	s.Tokens++
	switch res.Kind {
	case KindPlain:
		s.Plain++
	case KindResolved:
		s.Resolved++
	case KindUnresolved:
		s.Unresolved++
		s.Misses[res.Key]++
	case KindUnknown:
		s.Unknown++
		s.Strangers[res.Key]++
	}
}

// Placeholders returns number of tokens which looked like placeholders.
func (s *Summary) Placeholders() int {
	return s.Resolved + s.Unresolved + s.Unknown
}

// MarshalLogObject makes Summary usable with zap.Object.
func (s *Summary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("tokens", s.Tokens)
	enc.AddInt("resolved", s.Resolved)
	enc.AddInt("unresolved", s.Unresolved)
	enc.AddInt("unknown", s.Unknown)
	enc.AddInt("lines", s.Lines)
	enc.AddInt("sentences", s.Sentences)
	enc.AddInt("left", s.Left)
	return nil
}

// String returns a readable tree of counters.
// It exists solely for manual inspection during debugging.
func (s *Summary) String() string {
	if s == nil {
		return "<nil Summary>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Summary")
	tw.Line(1, "Tokens: %d", s.Tokens)
	tw.Line(2, "Plain: %d", s.Plain)
	tw.Line(2, "Resolved: %d", s.Resolved)
	tw.Line(2, "Unresolved: %d", s.Unresolved)
	tw.Line(2, "Unknown: %d", s.Unknown)
	tw.Line(1, "Lines: %d", s.Lines)
	tw.Line(1, "Sentences: %d", s.Sentences)
	tw.Line(1, "Entries left: %d", s.Left)
	tw.Counts(1, "Misses", s.Misses)
	tw.Counts(1, "Unknown keys", s.Strangers)
	return tw.String()
}
