package vocabulary

import (
	"fmt"

	"github.com/dhamidi/plain/syntax"
)

// Word is a token resolved to a word class.
type Word struct {
	class       syntax.Category
	stem        string
	punctuation string
}

func NewWord(class syntax.Category, stem, punctuation string) Word {
	return Word{class: class, stem: stem, punctuation: punctuation}
}

func (w Word) Category() syntax.Category {
	return w.class
}

func (w Word) Stem() string {
	return w.stem
}

// Punctuation is the mark that followed the stem: "", ",", ".", ":", "'" or "'s".
func (w Word) Punctuation() string {
	return w.punctuation
}

func (w Word) Equal(other syntax.Head) bool {
	o, ok := other.(Word)
	return ok && o == w
}

func (w Word) String() string {
	return w.stem + w.punctuation
}

// UnknownWordError is returned by Lookup for a stem no word class accepts.
type UnknownWordError struct {
	Stem string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q", e.Stem)
}
