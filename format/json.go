package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/plain/syntax"
)

type JSONEncoder struct {
	w         io.Writer
	name      Namer
	sentences [][]*syntax.Constituency
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, name: DefaultNamer}
}

func (e *JSONEncoder) Encode(sentences [][]*syntax.Constituency) error {
	e.sentences = sentences
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := make([][]*jsonNode, len(e.sentences))
	for i, sentence := range e.sentences {
		data[i] = make([]*jsonNode, len(sentence))
		for j, tree := range sentence {
			data[i][j] = e.nodeToJSON(tree)
		}
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonNode struct {
	Head        string        `json:"head"`
	Category    string        `json:"category"`
	Punctuation string        `json:"punctuation,omitempty"`
	Position    *jsonPosition `json:"position,omitempty"`
	Specifier   *jsonNode     `json:"specifier,omitempty"`
	Complement  *jsonNode     `json:"complement,omitempty"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *JSONEncoder) nodeToJSON(n *syntax.Constituency) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Head:        n.Head.String(),
		Category:    e.name(n.Category()),
		Punctuation: syntax.PunctuationOf(n.Head),
		Specifier:   e.nodeToJSON(n.Specifier),
		Complement:  e.nodeToJSON(n.Complement),
	}
	if n.Pos.IsValid() {
		jn.Position = &jsonPosition{Line: n.Pos.Line, Column: n.Pos.Column}
	}
	return jn
}
