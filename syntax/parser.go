package syntax

import (
	"github.com/tliron/commonlog"
)

// Parser merges tokens into trees using the rules of a Grammar. A Parser
// holds no per-parse state and may be shared.
type Parser struct {
	grammar   Grammar
	log       commonlog.Logger
	maxTokens int
}

type Option func(*Parser)

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithMaxTokens rejects clauses longer than n tokens in Analyze. Zero means
// no limit.
func WithMaxTokens(n int) Option {
	return func(p *Parser) {
		p.maxTokens = n
	}
}

func NewParser(g Grammar, opts ...Option) *Parser {
	p := &Parser{
		grammar: g,
		log:     commonlog.GetLogger("plain.syntax"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Grammar() Grammar {
	return p.grammar
}
