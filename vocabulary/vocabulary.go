package vocabulary

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/plain/syntax"
)

// Vocabulary resolves stems to words and supplies the rules of every
// category. It implements syntax.Grammar.
type Vocabulary struct {
	keywords map[string]syntax.Category
	rules    syntax.RuleTable
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v, err := New(nil)
	if err != nil {
		panic(err)
	}
	return v
}

// New returns the built-in vocabulary extended with extra stems, keyed by
// class name. A stem may belong to only one class.
func New(extra map[string][]string) (*Vocabulary, error) {
	v := &Vocabulary{
		keywords: make(map[string]syntax.Category),
		rules:    make(syntax.RuleTable, len(classes)+len(literalRules)),
	}
	for c, r := range literalRules {
		v.rules[c] = r
	}
	for _, class := range classes {
		v.rules[class.Category] = class.Rules
		for _, stem := range class.Keywords {
			if err := v.add(stem, class.Category); err != nil {
				return nil, err
			}
		}
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c, ok := CategoryByName(name)
		if !ok || c < syntax.FirstWordCategory {
			return nil, fmt.Errorf("unknown word class %q", name)
		}
		for _, stem := range extra[name] {
			if err := v.add(stem, c); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

func (v *Vocabulary) add(stem string, c syntax.Category) error {
	if prev, ok := v.keywords[stem]; ok && prev != c {
		return fmt.Errorf("stem %q is both %s and %s", stem, CategoryName(prev), CategoryName(c))
	}
	v.keywords[stem] = c
	return nil
}

func (v *Vocabulary) Rules(c syntax.Category) syntax.Rules {
	return v.rules[c]
}

// Lookup resolves a stem and its trailing punctuation. Keywords are matched
// exactly and then with the first letter lowered, so sentence-initial words
// resolve like their lowercase forms; patterns are tried last.
func (v *Vocabulary) Lookup(stem, punctuation string) (syntax.Head, error) {
	if c, ok := v.keyword(stem); ok {
		return NewWord(c, stem, punctuation), nil
	}
	for _, class := range classes {
		if class.Pattern != nil && class.Pattern.MatchString(stem) {
			return NewWord(class.Category, stem, punctuation), nil
		}
	}
	return nil, &UnknownWordError{Stem: stem}
}

func (v *Vocabulary) keyword(stem string) (syntax.Category, bool) {
	if c, ok := v.keywords[stem]; ok {
		return c, true
	}
	r, size := utf8.DecodeRuneInString(stem)
	if !unicode.IsUpper(r) {
		return syntax.NoCategory, false
	}
	c, ok := v.keywords[string(unicode.ToLower(r))+stem[size:]]
	return c, ok
}

// Stems lists the keywords of a category in sorted order.
func (v *Vocabulary) Stems(c syntax.Category) []string {
	var stems []string
	for stem, sc := range v.keywords {
		if sc == c {
			stems = append(stems, stem)
		}
	}
	sort.Strings(stems)
	return stems
}

// Classes returns the built-in word classes in lookup order.
func Classes() []Class {
	result := make([]Class, len(classes))
	copy(result, classes)
	return result
}

// CategoryByName finds a category by its name, ignoring case.
func CategoryByName(name string) (syntax.Category, bool) {
	for c, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return c, true
		}
	}
	return syntax.NoCategory, false
}
