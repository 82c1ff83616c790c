package syntax

import "strings"

// Category identifies the attachment behaviour of a head. Identifiers are
// assigned at build time by the vocabulary; the values below are reserved.
type Category uint8

const (
	NoCategory Category = iota
	StringCategory
	NumberCategory

	// FirstWordCategory is the first identifier available to word classes.
	FirstWordCategory
)

// MaxCategory is the largest identifier a CategorySet can hold.
const MaxCategory Category = 63

// CategorySet is a bitset of categories.
type CategorySet uint64

func Categories(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

func (s CategorySet) With(c Category) CategorySet {
	if c > MaxCategory {
		return s
	}
	return s | 1<<c
}

func (s CategorySet) Union(other CategorySet) CategorySet {
	return s | other
}

func (s CategorySet) Contains(c Category) bool {
	return c <= MaxCategory && s&(1<<c) != 0
}

func (s CategorySet) IsEmpty() bool {
	return s == 0
}

// Members lists the categories in ascending order.
func (s CategorySet) Members() []Category {
	var result []Category
	for c := Category(0); c <= MaxCategory; c++ {
		if s.Contains(c) {
			result = append(result, c)
		}
	}
	return result
}

// Format renders the set using name to label each member.
func (s CategorySet) Format(name func(Category) string) string {
	members := s.Members()
	names := make([]string, len(members))
	for i, c := range members {
		names[i] = name(c)
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Rules are the four directional compatibility sets of a category.
//
//	ComplementedBy: categories that may follow this head as its complement.
//	Specifies:      categories whose leftmost head this phrase may specify.
//	Complements:    categories whose rightmost head this phrase may complement.
//	SpecifiedBy:    categories that may precede this head as its specifier.
type Rules struct {
	ComplementedBy CategorySet
	Specifies      CategorySet
	Complements    CategorySet
	SpecifiedBy    CategorySet
}

// Grammar supplies the rules of every category. Rules must not change while
// a parse is in progress.
type Grammar interface {
	Rules(c Category) Rules
}

// RuleTable is a Grammar backed by a map. Categories without an entry have
// empty rules.
type RuleTable map[Category]Rules

func (t RuleTable) Rules(c Category) Rules {
	return t[c]
}
