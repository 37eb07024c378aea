package bbcode

// normalizeNewlines deletes newline tokens made redundant by the break
// policy of adjacent block tags. It walks bottom-up, recursing into open
// tags as it meets them and scanning every sibling list in reverse index
// order so deletions never perturb unvisited indices.
//
// A newline goes away when it is the first child of a block parent whose
// break-start policy says so, the last child under the break-end policy, or
// the direct neighbor of an open block tag under that tag's break-after /
// break-before policy. The start and end rules each fire at most once per
// sibling list, so overlapping rules cannot delete two newlines where one
// was meant.
//
// With onlyBreakAfter set, only newlines directly following a block tag are
// removed.
func normalizeNewlines(p *Parser, children *[]*Token, parent *Token, onlyBreakAfter bool) {
	var parentDef TagDef
	hasParentDef := false
	if parent != nil {
		parentDef, hasParentDef = p.tagDef(parent.Name)
	}

	removedBreakEnd := false
	removedBreakStart := false

	for i := len(*children) - 1; i >= 0; i-- {
		tok := (*children)[i]
		if tok == nil {
			continue
		}

		if tok.Kind == KindOpen {
			normalizeNewlines(p, &tok.Children, tok, onlyBreakAfter)
			continue
		}

		if tok.Kind != KindNewline {
			continue
		}

		var left, right *Token
		if i > 0 {
			left = (*children)[i-1]
		}
		if i < len(*children)-1 {
			right = (*children)[i+1]
		}

		remove := false

		// leading or trailing newline directly inside a block parent
		if !onlyBreakAfter && hasParentDef && !parentDef.SelfClosing {
			if left == nil {
				if p.breakStart(parentDef) {
					remove = true
				}
			} else if !removedBreakEnd && right == nil {
				if p.breakEnd(parentDef) {
					remove = true
				}
				removedBreakEnd = remove
			}
		}

		// newline right after an open block tag
		if left != nil && left.Kind == KindOpen {
			if def, ok := p.tagDef(left.Name); ok {
				if !onlyBreakAfter {
					if p.breakAfter(def) {
						remove = true
					}
				} else if !def.Inline {
					remove = true
				}
			}
		}

		// newline right before an open block tag
		if !onlyBreakAfter && !removedBreakStart && right != nil && right.Kind == KindOpen {
			if def, ok := p.tagDef(right.Name); ok && p.breakBefore(def) {
				remove = true
				removedBreakStart = remove
			}
		}

		if remove {
			*children = append((*children)[:i], (*children)[i+1:]...)
		}
	}
}
