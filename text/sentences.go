package text

import (
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
)

type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

// NewSplitter returns sentence splitter trained for English. When training
// data cannot be loaded nil is returned, nil Splitter is usable and treats
// input as a single sentence.
func NewSplitter(log *zap.Logger) *Splitter {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data, turning off sentence splitting", zap.Error(err))
		return nil
	}
	return &Splitter{tokenizer}
}

// Split returns slice of sentences.
func (s *Splitter) Split(in string) []string {

	var sentences []string
	if s == nil {
		// sentenses tokenizer is off
		return append(sentences, in)
	}

	for _, sentence := range s.Tokenize(in) {
		sentences = append(sentences, sentence.Text)
	}

	// Sentences tokenizer has a funny way of working - sentence trailing
	// spaces belong to the next sentence. Move them back where they belong.
	for i := range len(sentences) - 1 {
		for idx, sym := range sentences[i+1] {
			if !unicode.IsSpace(sym) {
				sentences[i] = sentences[i] + sentences[i+1][0:idx]
				sentences[i+1] = sentences[i+1][idx:]
				break
			}
		}
	}
	return sentences
}

// Count returns number of non-blank sentences in the text.
func (s *Splitter) Count(in string) int {
	count := 0
	for _, sentence := range s.Split(in) {
		if len(SplitWords(sentence)) > 0 {
			count++
		}
	}
	return count
}
