package format

import (
	"encoding"

	"github.com/dhamidi/plain/syntax"
	"github.com/dhamidi/plain/vocabulary"
)

// Encoder writes parsed sentences, one slice of clause trees per sentence.
type Encoder interface {
	encoding.TextMarshaler
	Encode(sentences [][]*syntax.Constituency) error
}

// Namer labels categories in encoder output.
type Namer func(syntax.Category) string

var DefaultNamer Namer = vocabulary.CategoryName

// Flatten lists every tree of every clause forest, grouped by sentence.
func Flatten(analysis []syntax.SentenceAnalysis) [][]*syntax.Constituency {
	result := make([][]*syntax.Constituency, 0, len(analysis))
	for _, sentence := range analysis {
		var trees []*syntax.Constituency
		for _, clause := range sentence.Clauses {
			trees = append(trees, clause.Forest...)
		}
		result = append(result, trees)
	}
	return result
}
