package story

import (
	"io"
	"strings"
)

const (
	// LineWidth is the maximum number of bytes in an output line, trailing
	// spaces included.
	LineWidth = 70
	// LineBreak is the marker placed between committed lines.
	LineBreak = "\n"
)

// TrailingSpaces returns number of spaces to put after the word: sentence
// end gets two.
func TrailingSpaces(word string) int {
	if endsSentence(word) {
		return 2
	}
	return 1
}

func endsSentence(word string) bool {
	if len(word) == 0 {
		return false
	}
	last := word[len(word)-1]
	return last == '.' || last == '?'
}

// Wrapper accumulates words into lines no longer than LineWidth. It is not
// safe for concurrent use.
type Wrapper struct {
	buf string
	out []string
}

// Append adds word followed by spaces. When it does not fit, current line
// is committed and word starts a new one.
func (w *Wrapper) Append(word string, spaces int) {
	if len(w.buf)+len(word)+spaces <= LineWidth {
		w.buf += word + strings.Repeat(" ", spaces)
		return
	}
	w.out = append(w.out, w.buf, LineBreak)
	w.buf = word + " "
	if endsSentence(word) {
		w.buf += "  "
	}
}

// Lines returns number of lines committed so far, line in progress is not
// counted.
func (w *Wrapper) Lines() int {
	return len(w.out) / 2
}

// Flush commits the last line, even when empty, and returns accumulated
// output. Wrapper is reset afterwards.
func (w *Wrapper) Flush() []string {
	out := append(w.out, w.buf)
	w.out, w.buf = nil, ""
	return out
}

// WriteLines concatenates lines and break markers into dst.
func WriteLines(dst io.Writer, lines []string) (int64, error) {
	var total int64
	for _, l := range lines {
		n, err := io.WriteString(dst, l)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
