// Package discourse groups the tokens of a text into the clauses and
// sentences the syntax parser works on.
package discourse

import (
	"fmt"

	"github.com/dhamidi/plain/syntax"
)

type Tokenizer interface {
	Tokenize(text string) ([]*syntax.Constituency, error)
}

// Read tokenizes text and segments it into a block.
func Read(text string, t Tokenizer) (syntax.Block, error) {
	tokens, err := t.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("read discourse: %w", err)
	}
	return Segment(tokens), nil
}

// Segment splits tokens at punctuation. A comma or colon ends a clause and a
// period ends both the clause and its sentence. Tokens after the last mark
// form a final clause.
func Segment(tokens []*syntax.Constituency) syntax.Block {
	var (
		block    syntax.Block
		sentence syntax.Sentence
		clause   syntax.Clause
	)
	for _, tok := range tokens {
		clause = append(clause, tok)
		switch syntax.PunctuationOf(tok.Head) {
		case ",", ":":
			sentence = append(sentence, clause)
			clause = nil
		case ".":
			sentence = append(sentence, clause)
			block = append(block, sentence)
			clause, sentence = nil, nil
		}
	}
	if len(clause) > 0 {
		sentence = append(sentence, clause)
	}
	if len(sentence) > 0 {
		block = append(block, sentence)
	}
	return block
}
