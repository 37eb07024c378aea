package bbcode

// processOpen handles an opening tag token.
//
// An opening tag whose name appears in the innermost open ancestor's ClosedBy
// set pops that ancestor first, list-item style: "[*]one [*]two" closes the
// first item when the second opens. The tag then joins the current container
// and becomes the new innermost open tag, but only when it can ever close: a
// non-self-closing tag with no ClosedBy relationship and no matching closing
// tag anywhere ahead in the stream is not a container and is demoted to
// content.
func processOpen(s *builderState, tok *Token) {
	if s.closesCurrent(tok.Name) {
		s.pop()
	}

	s.addTag(tok)

	def, ok := s.p.tagDef(tok.Name)
	if !ok {
		// unknown names are demoted during classification; a token that
		// still reads as open here always has a definition
		return
	}

	if def.SelfClosing {
		return
	}

	if len(def.ClosedBy) > 0 || hasTag(s.toks, tok.Name, KindClose) {
		s.push(tok)
		return
	}

	tok.demoteToContent()
}
