package vocabulary

import (
	"regexp"

	"github.com/dhamidi/plain/syntax"
)

const (
	Determiner syntax.Category = syntax.FirstWordCategory + iota
	Noun
	Pronoun
	Verb
	Preposition
	Operator
	Conjunction
	Subordinator
	Adverb
	Adjective
)

// Class describes one word class. A stem belongs to the class if it is one
// of its keywords or, failing every keyword table, matches its pattern.
type Class struct {
	Category syntax.Category
	Name     string
	Keywords []string
	Pattern  *regexp.Regexp
	Rules    syntax.Rules
}

var (
	nominals  = syntax.Categories(Determiner, Noun, Pronoun, syntax.NumberCategory, syntax.StringCategory)
	arguments = nominals.With(Adjective)
)

// classes is ordered: keyword tables are searched first to last, then patterns.
var classes = []Class{
	{
		Category: Determiner,
		Name:     "Determiner",
		Keywords: []string{"a", "an", "the", "every", "each", "some", "no", "all", "any"},
		Rules: syntax.Rules{
			ComplementedBy: syntax.Categories(Noun, Adjective),
		},
	},
	{
		Category: Pronoun,
		Name:     "Pronoun",
		Keywords: []string{"it", "they", "this", "that", "these", "those", "something", "nothing"},
	},
	{
		Category: Verb,
		Name:     "Verb",
		Keywords: []string{
			"is", "are", "was", "were", "be", "has", "have", "had",
			"equals", "exceeds", "contains", "means", "makes", "make",
			"says", "say", "prints", "print", "returns", "return",
			"gets", "get", "takes", "take", "gives", "give", "becomes", "become",
		},
		Rules: syntax.Rules{
			ComplementedBy: arguments.Union(syntax.Categories(Adverb, Preposition)),
			SpecifiedBy:    nominals,
		},
	},
	{
		Category: Preposition,
		Name:     "Preposition",
		Keywords: []string{"of", "to", "in", "on", "from", "with", "by", "for", "at", "into", "as"},
		Rules: syntax.Rules{
			ComplementedBy: nominals,
		},
	},
	{
		Category: Operator,
		Name:     "Operator",
		Keywords: []string{"plus", "minus", "times", "over", "modulo"},
		Rules: syntax.Rules{
			ComplementedBy: nominals,
		},
	},
	{
		Category: Conjunction,
		Name:     "Conjunction",
		Keywords: []string{"and", "or", "but", "nor"},
		Rules: syntax.Rules{
			ComplementedBy: nominals.With(Verb),
			SpecifiedBy:    nominals.With(Verb),
		},
	},
	{
		Category: Subordinator,
		Name:     "Subordinator",
		Keywords: []string{"if", "when", "unless", "while", "until", "otherwise", "then"},
		Rules: syntax.Rules{
			ComplementedBy: syntax.Categories(Verb),
		},
	},
	{
		Category: Adverb,
		Name:     "Adverb",
		Keywords: []string{"not", "now", "also", "always", "never", "again", "only"},
		Rules: syntax.Rules{
			ComplementedBy: syntax.Categories(Verb),
			SpecifiedBy:    syntax.Categories(Verb),
		},
	},
	{
		Category: Adjective,
		Name:     "Adjective",
		Keywords: []string{"big", "small", "new", "old", "first", "last", "next", "empty", "same", "other"},
		Rules: syntax.Rules{
			ComplementedBy: syntax.Categories(Noun),
		},
	},
	{
		Category: Noun,
		Name:     "Noun",
		Pattern:  regexp.MustCompile(`^[A-Z][a-z]+(-[a-z]+)*$`),
		Rules: syntax.Rules{
			ComplementedBy: syntax.Categories(Preposition, Operator),
		},
	},
}

var literalRules = syntax.RuleTable{
	syntax.NumberCategory: {ComplementedBy: syntax.Categories(Operator)},
	syntax.StringCategory: {},
}

var categoryNames = map[syntax.Category]string{
	syntax.NoCategory:     "None",
	syntax.StringCategory: "String",
	syntax.NumberCategory: "Number",
}

func init() {
	for _, c := range classes {
		categoryNames[c.Category] = c.Name
	}
}

// CategoryName returns the name of a built-in or word category.
func CategoryName(c syntax.Category) string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}
