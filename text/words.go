// Package text splits story and dictionary streams into words and sentences.
package text

import (
	"bufio"
	"io"
	"iter"
)

const maxWordSize = 1024 * 1024

// Scanner reads whitespace separated words from a stream.
type Scanner struct {
	sc *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxWordSize)
	sc.Split(ScanWords)
	return &Scanner{sc: sc}
}

// Words returns an iterator over words. Empty words are never produced.
// Check Err after iteration is over.
func (s *Scanner) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.sc.Scan() {
			if !yield(s.sc.Text()) {
				return
			}
		}
	}
}

// Err returns first non-EOF error encountered while reading.
func (s *Scanner) Err() error {
	return s.sc.Err()
}

// SplitWords returns slice of words in the string.
func SplitWords(in string) []string {
	var (
		result = []string{}
		start  = -1
	)
	for idx := 0; idx < len(in); idx++ {
		if isSeparator(in[idx]) {
			if start >= 0 {
				result = append(result, in[start:idx])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = idx
		}
	}
	if start >= 0 {
		result = append(result, in[start:])
	}
	return result
}

// ScanWords is a bufio.SplitFunc similar to bufio.ScanWords, but only ASCII
// white space separates words. NBSP, NEL and other Unicode spaces stay inside
// words.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// request more data
	return start, nil, nil
}

// isSeparator matches white space of the C locale.
func isSeparator(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}
