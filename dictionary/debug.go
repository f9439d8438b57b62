package dictionary

import (
	"madlibs/utils/debug"
)

// String returns a readable tree of dictionary content.
// It exists solely for manual inspection during debugging.
func (d *Dictionary) String() string {
	if d == nil {
		return "<nil Dictionary>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Dictionary (%d entries)", len(d.entries))
	for i, e := range d.entries {
		tw.Line(1, "Entry[%d] key=%q value=%q", i, e.Key, e.Value)
	}

	counts := make(map[string]int)
	for _, e := range d.entries {
		counts[e.Key]++
	}
	tw.Counts(0, "Keys", counts)
	return tw.String()
}
