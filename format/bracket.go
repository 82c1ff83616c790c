package format

import (
	"io"
	"strings"

	"github.com/dhamidi/plain/syntax"
)

// BracketEncoder writes labelled bracketings such as
//
//	[Verb [Pronoun it] is [Number 1]]
//
// one tree per line, with a blank line between sentences.
type BracketEncoder struct {
	w         io.Writer
	name      Namer
	sentences [][]*syntax.Constituency
}

func NewBracketEncoder(w io.Writer) *BracketEncoder {
	return &BracketEncoder{w: w, name: DefaultNamer}
}

func (e *BracketEncoder) WithNamer(name Namer) *BracketEncoder {
	e.name = name
	return e
}

func (e *BracketEncoder) Encode(sentences [][]*syntax.Constituency) error {
	e.sentences = sentences
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *BracketEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for i, sentence := range e.sentences {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, tree := range sentence {
			e.writeTree(&sb, tree)
			sb.WriteString("\n")
		}
	}
	return []byte(sb.String()), nil
}

// Bracket formats a single tree.
func Bracket(tree *syntax.Constituency, name Namer) string {
	var sb strings.Builder
	(&BracketEncoder{name: name}).writeTree(&sb, tree)
	return sb.String()
}

func (e *BracketEncoder) writeTree(sb *strings.Builder, n *syntax.Constituency) {
	sb.WriteString("[")
	sb.WriteString(e.name(n.Category()))
	if n.Specifier != nil {
		sb.WriteString(" ")
		e.writeTree(sb, n.Specifier)
	}
	sb.WriteString(" ")
	sb.WriteString(n.Head.String())
	if n.Complement != nil {
		sb.WriteString(" ")
		e.writeTree(sb, n.Complement)
	}
	sb.WriteString("]")
}
