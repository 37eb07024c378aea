package bbcode

// processClose handles a closing tag token.
//
// The happy path closes the innermost open tag. Before that, ancestors whose
// ClosedBy set contains "/"+name are popped, so "[/list]" also closes an open
// "[*]". A close matching an ancestor further up the stack (the user wrote
// "[i][b]text[/i]") is resolved by popping the intermediate tags, cloning
// each and threading the clones into a chain that is spliced in after the
// closed tag, so subsequent tokens keep nesting inside the still-open tags.
// A close matching nothing at all is demoted to content.
func processClose(s *builderState, tok *Token) {
	for {
		cur := s.current()
		if cur == nil || tok.Name == cur.Name || !s.closesCurrent("/"+tok.Name) {
			break
		}
		s.pop()
	}

	cur := s.current()

	switch {
	case cur != nil && tok.Name == cur.Name:
		cur.SetClosing(tok)
		s.pop()

	case hasTag(s.openTags, tok.Name, KindOpen):
		spliceCloneChain(s, tok)

	default:
		tok.demoteToContent()
		s.addTag(tok)
	}
}

// spliceCloneChain resolves an out-of-order close. Ancestors above the
// matching tag are popped one at a time; each is cloned shallowly and the
// previous clone becomes the new clone's only child, building a chain that
// mirrors the original nesting. The outermost clone is appended to the
// container that held the matching tag and all clones go back on the open
// stack in their original relative order.
func spliceCloneChain(s *builderState, tok *Token) {
	var cloned []*Token

	for {
		cur := s.pop()
		if cur == nil {
			break
		}

		if cur.Name == tok.Name {
			cur.SetClosing(tok)
			break
		}

		clone := cur.clone()
		if len(cloned) > 0 {
			clone.Children = append(clone.Children, cloned[len(cloned)-1])
		}
		cloned = append(cloned, clone)
	}

	if len(cloned) > 0 {
		s.addTag(cloned[len(cloned)-1])

		for i := len(cloned) - 1; i >= 0; i-- {
			s.push(cloned[i])
		}
	}

	// a single newline right after the close of a block tag is absorbed into
	// the deepest clone, now the innermost open tag
	if next := s.peek(); next != nil && next.Kind == KindNewline {
		if def, ok := s.p.tagDef(tok.Name); ok && !def.Inline {
			s.addTag(next)
			s.shift()
		}
	}
}
