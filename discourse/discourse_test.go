package discourse

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/plain/lexer"
	"github.com/dhamidi/plain/syntax"
	"github.com/dhamidi/plain/vocabulary"
)

const factorial = `a Number has a Factorial.
if the Number is 0,
	the Factorial is 1.
otherwise,
	it is the Number times the Factorial of the Number minus 1.
`

func shape(block syntax.Block) [][]string {
	var result [][]string
	for _, sentence := range block {
		var clauses []string
		for _, clause := range sentence {
			var words []string
			for _, tok := range clause {
				words = append(words, tok.Head.String())
			}
			clauses = append(clauses, strings.Join(words, " "))
		}
		result = append(result, clauses)
	}
	return result
}

func TestReadSegmentsSentencesAndClauses(t *testing.T) {
	block, err := Read(factorial, lexer.New(vocabulary.Default()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := [][]string{
		{"a Number has a Factorial."},
		{"if the Number is 0,", "the Factorial is 1."},
		{"otherwise,", "it is the Number times the Factorial of the Number minus 1."},
	}
	got := shape(block)
	if len(got) != len(want) {
		t.Fatalf("sentences = %q, want %q", got, want)
	}
	for i := range want {
		if strings.Join(got[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadParsesEveryClause(t *testing.T) {
	v := vocabulary.Default()
	block, err := Read(factorial, lexer.New(v))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	analysis, err := syntax.NewParser(v).Analyze(block)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	roots := []string{"has", "if", "is", "otherwise,", "is"}
	i := 0
	for _, sentence := range analysis {
		for _, clause := range sentence.Clauses {
			if !clause.Complete() {
				t.Errorf("clause %d left a forest of %d trees", i, len(clause.Forest))
			}
			if got := clause.Tree().Head.String(); got != roots[i] {
				t.Errorf("clause %d root = %q, want %q", i, got, roots[i])
			}
			i++
		}
	}
	if i != len(roots) {
		t.Errorf("clauses = %d, want %d", i, len(roots))
	}
}

func TestReadTrailingClause(t *testing.T) {
	block, err := Read("the Number is 1. it is", lexer.New(vocabulary.Default()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got := shape(block)
	if len(got) != 2 || got[1][0] != "it is" {
		t.Errorf("block = %q", got)
	}
}

func TestReadUnknownWord(t *testing.T) {
	_, err := Read("the Number glorps.", lexer.New(vocabulary.Default()))
	var unknown *vocabulary.UnknownWordError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *vocabulary.UnknownWordError", err)
	}
	if unknown.Stem != "glorps" {
		t.Errorf("Stem = %q, want glorps", unknown.Stem)
	}
}

func TestSegmentEmpty(t *testing.T) {
	if got := Segment(nil); len(got) != 0 {
		t.Errorf("Segment(nil) = %v, want empty", got)
	}
}
