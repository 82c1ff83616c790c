package syntax

// Reduce folds tokens, in order, into as few trees as the grammar allows and
// returns the remaining forest.
//
// Each token is merged with the last tree of the working sequence. When that
// succeeds the whole sequence is reduced again from the start, since the
// grown tree may now attach to trees shifted earlier. When it fails the token
// is shifted as a new tree. Merge only ever adds edges, so reanalysis never
// undoes an attachment.
//
// The tokens are modified in place and belong to the returned forest.
func (p *Parser) Reduce(tokens []*Constituency) []*Constituency {
	if len(tokens) == 0 {
		return nil
	}
	trees := []*Constituency{tokens[0]}
	for _, token := range tokens[1:] {
		merged, rule, err := p.merge(trees[len(trees)-1], token)
		if err != nil {
			p.log.Debugf("shift %q", token)
			trees = append(trees, token)
			continue
		}
		p.log.Debugf("merge by %s: %q", rule, merged)
		trees[len(trees)-1] = merged
		trees = p.Reduce(trees)
	}
	return trees
}
