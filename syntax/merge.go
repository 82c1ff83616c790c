package syntax

import "fmt"

// Rule names the merge rule that attached two trees.
type Rule int

const (
	RuleNone Rule = iota
	RuleComplementedBy
	RuleSpecifies
	RuleComplements
	RuleSpecifiedBy
)

var ruleNames = map[Rule]string{
	RuleNone:           "None",
	RuleComplementedBy: "ComplementedBy",
	RuleSpecifies:      "Specifies",
	RuleComplements:    "Complements",
	RuleSpecifiedBy:    "SpecifiedBy",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// MergeError reports that no rule lets Other follow Tree.
type MergeError struct {
	Tree  *Constituency
	Other *Constituency
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("cannot merge %q with %q", e.Tree.String(), e.Other.String())
}

// Merge attaches other, which follows tree in the token stream, to tree or
// tree to other. It returns the root of the combined tree.
//
// Rules are tried in order; the first that applies wins:
//
//  1. the rightmost head of tree is complemented by other
//  2. tree specifies the leftmost head of other
//  3. other complements the rightmost head of tree
//  4. the leftmost head of other is specified by tree
//
// Merge is not commutative. Exactly one edge is set on success; on failure
// neither tree is modified and the error is a *MergeError.
func (p *Parser) Merge(tree, other *Constituency) (*Constituency, error) {
	result, _, err := p.merge(tree, other)
	return result, err
}

func (p *Parser) merge(tree, other *Constituency) (*Constituency, Rule, error) {
	last := Rightmost(tree)
	first := Leftmost(other)

	switch {
	case p.grammar.Rules(last.Category()).ComplementedBy.Contains(other.Category()):
		last.Complement = other
		return tree, RuleComplementedBy, nil
	case p.grammar.Rules(tree.Category()).Specifies.Contains(first.Category()):
		first.Specifier = tree
		return other, RuleSpecifies, nil
	case p.grammar.Rules(other.Category()).Complements.Contains(last.Category()):
		last.Complement = other
		return tree, RuleComplements, nil
	case p.grammar.Rules(first.Category()).SpecifiedBy.Contains(tree.Category()):
		first.Specifier = tree
		return other, RuleSpecifiedBy, nil
	}
	return nil, RuleNone, &MergeError{Tree: tree, Other: other}
}
