package bbcode

// builderState holds all mutable state of one tree-building run.
//
// The builder consumes the classified lexeme stream left to right, tracking
// the chain of currently open ancestor tags in an explicit stack. New tokens
// are appended to the children of the innermost open tag, or to the output
// forest when the stack is empty. The state lives for exactly one parse call
// and is never shared.
type builderState struct {
	p *Parser

	// toks is the remaining unconsumed lexeme stream.
	toks []*Token

	// openTags is the stack of currently open ancestor tokens. The top
	// element is the container new tokens get appended to.
	openTags []*Token

	// out is the output forest, the container at stack depth zero.
	out []*Token

	// done is set by the unterminated-math error path, which consumes the
	// whole remaining stream and force-closes every open ancestor.
	done bool
}

// shift consumes and returns the next token of the stream, nil when
// exhausted.
func (s *builderState) shift() *Token {
	if len(s.toks) == 0 {
		return nil
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok
}

// peek returns the next token of the stream without consuming it.
func (s *builderState) peek() *Token {
	if len(s.toks) == 0 {
		return nil
	}
	return s.toks[0]
}

// current returns the innermost open tag, nil when the stack is empty.
func (s *builderState) current() *Token {
	if len(s.openTags) == 0 {
		return nil
	}
	return s.openTags[len(s.openTags)-1]
}

func (s *builderState) push(t *Token) {
	s.openTags = append(s.openTags, t)
}

func (s *builderState) pop() *Token {
	l := len(s.openTags)
	if l == 0 {
		return nil
	}
	top := s.openTags[l-1]
	s.openTags = s.openTags[:l-1]
	return top
}

// addTag appends the token to the current container: the innermost open
// tag's children, or the output forest. Adjacent content tokens are folded
// together so a run of demoted lexemes comes out as one content token.
func (s *builderState) addTag(t *Token) {
	dst := &s.out
	if cur := s.current(); cur != nil {
		dst = &cur.Children
	}

	if n := len(*dst); t.Kind == KindContent && n > 0 && (*dst)[n-1].Kind == KindContent {
		(*dst)[n-1].Raw += t.Raw
		return
	}

	*dst = append(*dst, t)
}

// closesCurrent reports whether the innermost open tag declares the given
// name in its ClosedBy set. Closing names carry a "/" prefix.
func (s *builderState) closesCurrent(name string) bool {
	cur := s.current()
	if cur == nil {
		return false
	}

	def, ok := s.p.tagDef(cur.Name)
	if !ok {
		return false
	}

	for _, n := range def.ClosedBy {
		if n == name {
			return true
		}
	}

	return false
}

// hasTag reports whether any token in the list has the given name and kind.
func hasTag(list []*Token, name string, kind Kind) bool {
	for _, t := range list {
		if t.Kind == kind && t.Name == name {
			return true
		}
	}
	return false
}

// childSuppressed reports whether some ancestor on the open stack disallows
// this token as a child. The closing tag matching the innermost open
// ancestor is never suppressed, otherwise the ancestor could not close.
func (s *builderState) childSuppressed(tok *Token) bool {
	if cur := s.current(); cur != nil && tok.Kind == KindClose && tok.Name == cur.Name {
		return false
	}

	for _, anc := range s.openTags {
		if !s.p.childAllowed(anc, tok) {
			return true
		}
	}

	return false
}

// buildTree resolves the flat classified stream into a forest of nested
// tokens. It never fails: malformed and dangling tags are demoted to
// content, the only reported condition is an unterminated math span.
func buildTree(p *Parser, toks []*Token) []*Token {
	state := &builderState{p: p, toks: toks}

	for !state.done {
		tok := state.shift()
		if tok == nil {
			break
		}

		// math spans capture their interior verbatim and are handled before
		// the suppressed-child check, they have their own AllowMath gate
		if tok.Kind == KindMathOpenDisplay || tok.Kind == KindMathOpenInline {
			processMath(state, tok)
			continue
		}

		if state.childSuppressed(tok) {
			tok.demoteToContent()
		}

		switch tok.Kind {
		case KindOpen:
			processOpen(state, tok)

		case KindClose:
			processClose(state, tok)

		case KindNewline:
			processNewline(state, tok)

		default:
			// content, escapes and stray math closers are appended as-is
			state.addTag(tok)
		}
	}

	return state.out
}
