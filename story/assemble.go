package story

import (
	"fmt"
	"io"

	"madlibs/config"
	"madlibs/dictionary"
	"madlibs/text"
)

// Assembler drives story tokens through Resolver and Wrapper. One Assembler
// serves exactly one run.
type Assembler struct {
	resolver *Resolver
	queue    *dictionary.Queue
	wrapper  Wrapper
	spacing  config.SpacingSource
	summary  *Summary
}

func NewAssembler(queue *dictionary.Queue, snapshot dictionary.Snapshot, spacing config.SpacingSource) *Assembler {
	return &Assembler{
		resolver: NewResolver(queue, snapshot),
		queue:    queue,
		spacing:  spacing,
		summary:  newSummary(),
	}
}

// Add processes single story token.
func (a *Assembler) Add(token string) Result {
	res := a.resolver.Resolve(token)
	a.summary.count(res)

	spacingWord := token
	if a.spacing == config.SpacingSourceResolved {
		spacingWord = res.Text
	}
	a.wrapper.Append(res.Text, TrailingSpaces(spacingWord))
	return res
}

// Finish returns complete output. Assembler should not be used afterwards.
func (a *Assembler) Finish() []string {
	// line in progress is committed by Flush
	a.summary.Lines = a.wrapper.Lines() + 1
	out := a.wrapper.Flush()
	a.summary.Left = a.queue.Len()
	return out
}

// Summary returns counters collected so far.
func (a *Assembler) Summary() *Summary {
	return a.summary
}

// Assemble reads story tokens until input is exhausted and returns output
// lines with break markers between them.
func Assemble(r io.Reader, queue *dictionary.Queue, snapshot dictionary.Snapshot, spacing config.SpacingSource) ([]string, *Summary, error) {
	a := NewAssembler(queue, snapshot, spacing)

	s := text.NewScanner(r)
	for token := range s.Words() {
		a.Add(token)
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("unable to read story: %w", err)
	}
	return a.Finish(), a.Summary(), nil
}
