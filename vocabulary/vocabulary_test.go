package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/plain/syntax"
)

func TestLookupKeywords(t *testing.T) {
	v := Default()

	tests := []struct {
		stem string
		want syntax.Category
	}{
		{"the", Determiner},
		{"it", Pronoun},
		{"is", Verb},
		{"of", Preposition},
		{"times", Operator},
		{"and", Conjunction},
		{"if", Subordinator},
		{"If", Subordinator},
		{"not", Adverb},
		{"big", Adjective},
		{"Factorial", Noun},
		{"Fizz-buzz", Noun},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			head, err := v.Lookup(tt.stem, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, head.Category())
			assert.Equal(t, tt.stem, head.String())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("frobnicate", "")
	var unknown *UnknownWordError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "frobnicate", unknown.Stem)
	assert.EqualError(t, err, `unknown word "frobnicate"`)
}

func TestWord(t *testing.T) {
	w := NewWord(Noun, "Number", "'s")
	assert.Equal(t, "Number's", w.String())
	assert.Equal(t, "'s", syntax.PunctuationOf(w))
	assert.True(t, w.Equal(NewWord(Noun, "Number", "'s")))
	assert.False(t, w.Equal(NewWord(Noun, "Number", "")))
	assert.False(t, w.Equal(NewWord(Verb, "Number", "'s")))
}

func TestNewWithExtraStems(t *testing.T) {
	v, err := New(map[string][]string{
		"verb":      {"frobnicates"},
		"Adjective": {"shiny"},
	})
	require.NoError(t, err)

	head, err := v.Lookup("frobnicates", ".")
	require.NoError(t, err)
	assert.Equal(t, Verb, head.Category())
	assert.Contains(t, v.Stems(Adjective), "shiny")

	_, err = Default().Lookup("frobnicates", "")
	assert.Error(t, err, "extra stems must not leak into other vocabularies")
}

func TestNewRejectsBadExtras(t *testing.T) {
	_, err := New(map[string][]string{"Gerund": {"running"}})
	assert.EqualError(t, err, `unknown word class "Gerund"`)

	_, err = New(map[string][]string{"String": {"quote"}})
	assert.Error(t, err)

	_, err = New(map[string][]string{"Noun": {"the"}})
	assert.EqualError(t, err, `stem "the" is both Determiner and Noun`)
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "Number", CategoryName(syntax.NumberCategory))
	assert.Equal(t, "Subordinator", CategoryName(Subordinator))
	assert.Equal(t, "Unknown", CategoryName(syntax.MaxCategory))

	c, ok := CategoryByName("preposition")
	require.True(t, ok)
	assert.Equal(t, Preposition, c)

	assert.Len(t, Classes(), 10)
}

func TestRulesAreStatic(t *testing.T) {
	v := Default()
	assert.True(t, v.Rules(Determiner).ComplementedBy.Contains(Noun))
	assert.True(t, v.Rules(Verb).SpecifiedBy.Contains(Pronoun))
	assert.True(t, v.Rules(syntax.NumberCategory).ComplementedBy.Contains(Operator))
	assert.Equal(t, syntax.Rules{}, v.Rules(syntax.StringCategory))
	assert.Equal(t, syntax.Rules{}, v.Rules(syntax.MaxCategory))
}

func parse(t *testing.T, v *Vocabulary, words ...string) []*syntax.Constituency {
	t.Helper()
	tokens := make([]*syntax.Constituency, len(words))
	for i, w := range words {
		head, err := v.Lookup(w, "")
		require.NoError(t, err)
		tokens[i] = syntax.Leaf(head, syntax.Position{})
	}
	return syntax.NewParser(v).Reduce(tokens)
}

func TestGrammarReducesClauses(t *testing.T) {
	v := Default()

	tests := []struct {
		words []string
		root  string
	}{
		{[]string{"the", "Factorial", "is", "the", "Number"}, "is"},
		{[]string{"if", "the", "Number", "equals", "the", "Factorial"}, "if"},
		{[]string{"it", "is", "the", "Number", "times", "the", "Factorial", "of", "the", "Number"}, "is"},
		{[]string{"a", "big", "Number", "has", "a", "Factorial"}, "has"},
		{[]string{"the", "Number", "and", "the", "Factorial"}, "and"},
	}
	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			forest := parse(t, v, tt.words...)
			require.Len(t, forest, 1, "forest: %v", forest)
			assert.Equal(t, tt.root, forest[0].Head.String())

			var rendered []string
			for _, h := range syntax.Render(forest[0]) {
				rendered = append(rendered, h.String())
			}
			assert.Equal(t, tt.words, rendered)
		})
	}
}
