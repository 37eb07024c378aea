package bbcode

// processNewline handles a newline token.
//
// A newline can implicitly close the innermost open tag when the tag
// declares a ClosedBy relationship with the lexeme that follows, list-item
// style: "[*]item\n[*]item" ends the first item at the newline. The literal
// matching closing tag is exempt, it closes the tag itself. The pop only
// happens when the tag's break-after policy calls for an automatic break.
// The newline token itself is appended either way.
func processNewline(s *builderState, tok *Token) {
	cur := s.current()
	next := s.peek()

	if cur != nil && next != nil {
		name := next.Name
		if next.Kind == KindClose {
			name = "/" + name
		}

		if s.closesCurrent(name) && !(next.Kind == KindClose && next.Name == cur.Name) {
			if def, ok := s.p.tagDef(cur.Name); ok && s.p.breakAfter(def) {
				s.pop()
			}
		}
	}

	s.addTag(tok)
}
