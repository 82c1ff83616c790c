package format

import (
	"io"
	"strings"

	"github.com/dhamidi/plain/syntax"
)

// LineEncoder writes each tree as its rendered text on one line, with a
// blank line between sentences.
type LineEncoder struct {
	w         io.Writer
	sentences [][]*syntax.Constituency
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(sentences [][]*syntax.Constituency) error {
	e.sentences = sentences
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for i, sentence := range e.sentences {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, tree := range sentence {
			sb.WriteString(tree.String())
			sb.WriteString("\n")
		}
	}
	return []byte(sb.String()), nil
}
