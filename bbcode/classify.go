package bbcode

import "strings"

// classify derives the semantic (kind, name, attributes) triple for one raw
// lexeme. Tag lexemes whose name is malformed or unknown to the tag set are
// demoted to plain content here, never reported.
func (p *Parser) classify(kind Kind, raw string) *Token {
	switch kind {
	case KindOpen:
		return p.classifyOpen(raw)

	case KindClose:
		return p.classifyClose(raw)

	case KindMathOpenDisplay, KindMathCloseDisplay, KindMathOpenInline, KindMathCloseInline, KindEscapeDollar:
		// math delimiters and the dollar escape keep their literal text as
		// the name
		return NewToken(kind, raw, raw)

	default:
		return NewToken(kind, ContentName, raw)
	}
}

// classifyOpen splits an opening tag lexeme into the lowercased name and the
// attribute text.
//
// Example: "[quote author=\"someone\"]" has inner text
// `quote author="someone"`, name "quote", attribute text ` author="someone"`.
func (p *Parser) classifyOpen(raw string) *Token {
	inner := raw[len(p.opts.OpenDelim) : len(raw)-len(p.opts.CloseDelim)]

	// the name runs to the first whitespace or '='
	nameEnd := strings.IndexFunc(inner, func(r rune) bool {
		return r == '=' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})

	name := inner
	attrText := ""
	if nameEnd > -1 {
		name = inner[:nameEnd]
		attrText = inner[nameEnd:]
	}

	name = strings.ToLower(name)

	if _, ok := p.tagDef(name); !ok || name == "" {
		return NewToken(KindContent, ContentName, raw)
	}

	tok := NewToken(KindOpen, name, raw)
	if attrText != "" {
		tok.Attributes = p.parseAttributes(attrText)
	}

	return tok
}

// classifyClose extracts the name between the close marker and the closing
// delimiter.
func (p *Parser) classifyClose(raw string) *Token {
	start := len(p.opts.OpenDelim) + len(p.opts.CloseMarker)
	name := strings.ToLower(raw[start : len(raw)-len(p.opts.CloseDelim)])

	if _, ok := p.tagDef(name); !ok {
		return NewToken(KindContent, ContentName, raw)
	}

	return NewToken(KindClose, name, raw)
}
