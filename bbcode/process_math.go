package bbcode

// UnterminatedMathErr is the fixed diagnostic set on a math opening Token
// whose closing delimiter never appears before the input ends.
const UnterminatedMathErr = "unterminated math span: closing delimiter not found"

// processMath handles a math opening token, display or inline.
//
// Inside a tag with AllowMath false the delimiter is plain content. Otherwise
// the builder scans ahead for a matching closing delimiter: either a lexeme
// already classified as the right closing kind, or one whose literal text is
// the end delimiter of this begin delimiter (for symmetric pairs like "$"
// every occurrence lexes as an opener). Everything in between is captured as
// inert content children, the interior is never re-read as markup.
//
// When no closing delimiter exists the span is unterminated: the token gets
// its Err set, swallows the entire rest of the stream as content, and every
// open ancestor is force-closed with a synthesized closing token so the
// output forest stays well-formed. Parsing ends there.
func processMath(s *builderState, tok *Token) {
	for _, anc := range s.openTags {
		if def, ok := s.p.tagDef(anc.Name); ok && !def.AllowMath {
			tok.demoteToContent()
			s.addTag(tok)
			return
		}
	}

	closeKind := KindMathCloseInline
	if tok.Kind == KindMathOpenDisplay {
		closeKind = KindMathCloseDisplay
	}

	end := s.p.mathByOpen[tok.Raw].Close

	idx := -1
	for i, t := range s.toks {
		if t.Kind == closeKind || t.Raw == end {
			idx = i
			break
		}
	}

	if idx == -1 {
		failMath(s, tok)
		return
	}

	for _, inner := range s.toks[:idx] {
		appendContentChild(tok, inner)
	}

	closing := s.toks[idx]
	s.toks = s.toks[idx+1:]

	closing.Kind = closeKind
	closing.Name = closing.Raw
	tok.SetClosing(closing)

	s.addTag(tok)
}

// failMath is the unterminated-span error path: the rest of the stream
// becomes inert content of the math token and all open ancestors are
// force-closed. The synthesized closing tokens carry no raw text, the
// round-trip guarantee does not extend past an unterminated span.
func failMath(s *builderState, tok *Token) {
	tok.Err = UnterminatedMathErr

	for _, rest := range s.toks {
		appendContentChild(tok, rest)
	}
	s.toks = nil

	s.addTag(tok)

	for {
		open := s.pop()
		if open == nil {
			break
		}
		open.SetClosing(NewToken(KindClose, open.Name, ""))
	}

	s.done = true
}

// appendContentChild reclassifies the token as content and appends it to the
// parent, folding it into a preceding content child when possible.
func appendContentChild(parent, t *Token) {
	t.demoteToContent()

	if n := len(parent.Children); n > 0 && parent.Children[n-1].Kind == KindContent {
		parent.Children[n-1].Raw += t.Raw
		return
	}

	parent.Children = append(parent.Children, t)
}
