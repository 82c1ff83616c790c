package syntax

import "fmt"

// Clause is a sequence of tokens, a Sentence a sequence of clauses and a
// Block a sequence of sentences.
type (
	Clause   []*Constituency
	Sentence []Clause
	Block    []Sentence
)

// Parse reduces every clause of block and returns one tree per clause,
// grouped by sentence. Only the first tree of each forest is kept; callers
// that need the unmerged remainder use Analyze. Empty clauses are skipped.
func (p *Parser) Parse(block Block) [][]*Constituency {
	sentences := make([][]*Constituency, 0, len(block))
	for _, sentence := range block {
		clauses := make([]*Constituency, 0, len(sentence))
		for _, clause := range sentence {
			forest := p.Reduce(clause)
			if len(forest) == 0 {
				continue
			}
			clauses = append(clauses, forest[0])
		}
		sentences = append(sentences, clauses)
	}
	return sentences
}

type ClauseAnalysis struct {
	Tokens int
	Forest []*Constituency
}

// Complete reports whether the clause reduced to a single tree.
func (a ClauseAnalysis) Complete() bool {
	return len(a.Forest) == 1
}

// Tree returns the tree Parse would keep for this clause.
func (a ClauseAnalysis) Tree() *Constituency {
	if len(a.Forest) == 0 {
		return nil
	}
	return a.Forest[0]
}

type SentenceAnalysis struct {
	Clauses []ClauseAnalysis
}

// ClauseTooLongError is returned by Analyze for a clause with more tokens
// than the parser accepts.
type ClauseTooLongError struct {
	Sentence int
	Clause   int
	Tokens   int
	Max      int
}

func (e *ClauseTooLongError) Error() string {
	return fmt.Sprintf("sentence %d clause %d: %d tokens exceeds limit of %d",
		e.Sentence+1, e.Clause+1, e.Tokens, e.Max)
}

// Analyze is Parse without truncation: every clause keeps its whole forest.
// Empty clauses are skipped.
func (p *Parser) Analyze(block Block) ([]SentenceAnalysis, error) {
	if p.maxTokens > 0 {
		for i, sentence := range block {
			for j, clause := range sentence {
				if len(clause) > p.maxTokens {
					return nil, &ClauseTooLongError{Sentence: i, Clause: j, Tokens: len(clause), Max: p.maxTokens}
				}
			}
		}
	}

	result := make([]SentenceAnalysis, 0, len(block))
	for _, sentence := range block {
		var analysis SentenceAnalysis
		for _, clause := range sentence {
			if len(clause) == 0 {
				continue
			}
			analysis.Clauses = append(analysis.Clauses, ClauseAnalysis{
				Tokens: len(clause),
				Forest: p.Reduce(clause),
			})
		}
		result = append(result, analysis)
	}
	return result, nil
}
