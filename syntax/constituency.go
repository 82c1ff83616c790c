package syntax

import (
	"fmt"
	"strings"
)

// Position locates a token in its source text. Line and Column are 1-based;
// the zero Position means unknown.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Head is the payload of a Constituency: a word, a string literal or a
// number literal.
type Head interface {
	Category() Category
	Equal(other Head) bool
	String() string
}

// Constituency is a node of a binary dependency tree. The specifier precedes
// the head and the complement follows it.
type Constituency struct {
	Head       Head
	Specifier  *Constituency
	Complement *Constituency
	Pos        Position
}

// Leaf wraps a single token.
func Leaf(head Head, pos Position) *Constituency {
	return &Constituency{Head: head, Pos: pos}
}

func (c *Constituency) Category() Category {
	if c == nil || c.Head == nil {
		return NoCategory
	}
	return c.Head.Category()
}

func (c *Constituency) IsLeaf() bool {
	return c.Specifier == nil && c.Complement == nil
}

// Leftmost returns the node reached by following specifiers.
func Leftmost(c *Constituency) *Constituency {
	for c.Specifier != nil {
		c = c.Specifier
	}
	return c
}

// Rightmost returns the node reached by following complements.
func Rightmost(c *Constituency) *Constituency {
	for c.Complement != nil {
		c = c.Complement
	}
	return c
}

// Equal reports whether two trees have equal heads and equal subtrees.
// Positions are ignored.
func Equal(a, b *Constituency) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Head == nil || b.Head == nil {
		if a.Head != nil || b.Head != nil {
			return false
		}
	} else if !a.Head.Equal(b.Head) {
		return false
	}
	return Equal(a.Specifier, b.Specifier) && Equal(a.Complement, b.Complement)
}

// Walk visits the nodes of c in token order: specifier, head, complement.
func Walk(c *Constituency, fn func(*Constituency)) {
	if c == nil {
		return
	}
	Walk(c.Specifier, fn)
	fn(c)
	Walk(c.Complement, fn)
}

// Render returns the heads of c in their original token order.
func Render(c *Constituency) []Head {
	var heads []Head
	Walk(c, func(n *Constituency) {
		heads = append(heads, n.Head)
	})
	return heads
}

// Len returns the number of tokens in c.
func (c *Constituency) Len() int {
	n := 0
	Walk(c, func(*Constituency) { n++ })
	return n
}

func (c *Constituency) String() string {
	if c == nil {
		return ""
	}
	heads := Render(c)
	parts := make([]string, len(heads))
	for i, h := range heads {
		parts[i] = h.String()
	}
	return strings.Join(parts, " ")
}

// Punctuated is implemented by heads that keep the punctuation mark written
// after them.
type Punctuated interface {
	Punctuation() string
}

// PunctuationOf returns the trailing mark of h, or "".
func PunctuationOf(h Head) string {
	if p, ok := h.(Punctuated); ok {
		return p.Punctuation()
	}
	return ""
}
