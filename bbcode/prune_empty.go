package bbcode

import "strings"

// pruneEmpty removes open/close tag pairs whose content is pure whitespace
// when the tag's definition disallows emptiness. Children are pruned first,
// post-order, so a tag emptied by pruning its own children is caught too.
// The pruned tag is replaced in its container by whatever whitespace it
// held. Disabled by the RemoveEmptyTags option (checked by the caller).
func pruneEmpty(p *Parser, children *[]*Token) {
	for i := len(*children) - 1; i >= 0; i-- {
		tok := (*children)[i]
		if tok == nil || tok.Kind != KindOpen {
			continue
		}

		pruneEmpty(p, &tok.Children)

		def, ok := p.tagDef(tok.Name)
		if !ok {
			continue
		}

		if !def.SelfClosing && !def.AllowsEmpty && isWhitespaceOnly(tok.Children) {
			*children = spliceTokens(*children, i, 1, tok.Children...)
		}
	}
}

// isWhitespaceOnly reports whether every child is whitespace content or a
// newline. Any tag child, even an empty one, counts as content.
func isWhitespaceOnly(children []*Token) bool {
	for _, t := range children {
		if t == nil {
			continue
		}

		switch t.Kind {
		case KindOpen, KindClose:
			return false

		case KindNewline:
			continue

		default:
			if strings.TrimSpace(t.Raw) != "" {
				return false
			}
		}
	}

	return true
}
