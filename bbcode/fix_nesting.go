package bbcode

// fixNesting repairs block tags that ended up inside inline ancestors.
// Each walk performs at most one rewrite and reports it, because the rewrite
// invalidates the sibling list being scanned; the driver simply re-walks
// until the forest is clean. Disabled entirely by the FixInvalidNesting
// option (checked by the caller).
func fixNesting(p *Parser, forest *[]*Token) {
	for fixNestingWalk(p, forest, nil, false, forest) {
	}
}

// fixNestingWalk recursively scans the forest carrying the ancestor path and
// an inside-an-inline-context flag. On the first block tag found inside an
// inline ancestor it splits that ancestor around the block tag:
//
//	[i]text[b]block[/b]more[/i]
//
// becomes three siblings in the ancestor's own container: the original
// inline tag truncated to the content before the block tag, the block tag
// itself (its children wrapped in a fresh clone of the inline tag when the
// inline tag is an allowed child), and a clone of the inline tag holding the
// content after the block tag.
func fixNestingWalk(p *Parser, children *[]*Token, parents []*Token, insideInline bool, root *[]*Token) bool {
	for i := 0; i < len(*children); i++ {
		tok := (*children)[i]
		if tok == nil || tok.Kind != KindOpen {
			continue
		}

		if insideInline && !p.isInline(tok) {
			parent := parents[len(parents)-1]
			right := parent.splitAt(tok)

			container := root
			if len(parents) > 1 {
				container = &parents[len(parents)-2].Children
			}

			// wrap the block tag's children in a fresh copy of the inline
			// ancestor when the inline tag may nest inside the block tag
			if p.childAllowed(tok, parent) {
				wrap := parent.clone()
				wrap.Children = tok.Children
				tok.Children = []*Token{wrap}
			}

			parentIdx := indexOfToken(*container, parent)
			if parentIdx > -1 {
				// the block tag moved into the right remainder with the
				// split, pull it back out
				if ri := indexOfToken(right.Children, tok); ri > -1 {
					right.Children = append(right.Children[:ri], right.Children[ri+1:]...)
				}

				*container = spliceTokens(*container, parentIdx+1, 0, tok, right)

				// a newline that led the right remainder belongs after the
				// block tag, not inside the remainder
				if len(right.Children) > 0 && right.Children[0] != nil &&
					right.Children[0].Kind == KindNewline && !p.isInline(tok) {
					nl := right.Children[0]
					right.Children = right.Children[1:]
					*container = spliceTokens(*container, parentIdx+2, 0, nl)
				}

				return true
			}
		}

		parents = append(parents, tok)
		changed := fixNestingWalk(p, &tok.Children, parents, insideInline || p.isInline(tok), root)
		parents = parents[:len(parents)-1]

		if changed {
			return true
		}
	}

	return false
}

// spliceTokens removes del elements at idx and inserts the given tokens
// there, like a JS Array splice.
func spliceTokens(list []*Token, idx, del int, insert ...*Token) []*Token {
	out := make([]*Token, 0, len(list)-del+len(insert))
	out = append(out, list[:idx]...)
	out = append(out, insert...)
	out = append(out, list[idx+del:]...)
	return out
}
