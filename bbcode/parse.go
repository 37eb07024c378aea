package bbcode

// Parser converts markup text into a forest of [Token] trees. It is immutable
// after construction: every Parse call builds a fresh stack and forest, so a
// single Parser is safe for concurrent use on distinct inputs.
type Parser struct {
	tags TagSet
	opts Options

	// classes are the lexeme classes in match precedence order.
	classes []lexemeClass

	// contentStops marks bytes that terminate a content run.
	contentStops [256]bool

	// mathByOpen resolves a begin delimiter to its table entry.
	mathByOpen map[string]MathDelim
}

// New creates a Parser over the given tag set, with every option merged over
// the fixed defaults. The tag set is consumed as read-only configuration.
func New(tags TagSet, opts ...Option) *Parser {
	o := DefaultOptions()
	for _, dec := range opts {
		dec(&o)
	}

	p := &Parser{
		tags:       tags,
		opts:       o,
		mathByOpen: make(map[string]MathDelim, len(o.MathDelims)),
	}

	for _, d := range o.MathDelims {
		p.mathByOpen[d.Open] = d
	}

	p.buildClasses()

	return p
}

// tagDef looks up the definition for a lowercase tag name.
func (p *Parser) tagDef(name string) (TagDef, bool) {
	def, ok := p.tags[name]
	return def, ok
}

// Parse converts the text into the final token forest. It is deterministic
// and total: it never fails, the only reported condition is the Err field on
// an unterminated math Token.
func (p *Parser) Parse(text string) []*Token {
	return p.parse(text, false)
}

// ParsePreservingNewlines parses like [Parser.Parse] but the newline
// normalizer only removes newlines that directly follow a block tag.
func (p *Parser) ParsePreservingNewlines(text string) []*Token {
	return p.parse(text, true)
}

func (p *Parser) parse(text string, onlyBreakAfter bool) []*Token {
	forest := buildTree(p, p.tokenize(text))

	if p.opts.FixInvalidNesting {
		fixNesting(p, &forest)
	}

	normalizeNewlines(p, &forest, nil, onlyBreakAfter)

	if p.opts.RemoveEmptyTags {
		pruneEmpty(p, &forest)
	}

	return compact(forest)
}

// compact drops nil placeholder entries left behind by the repair passes.
func compact(forest []*Token) []*Token {
	out := forest[:0]
	for _, t := range forest {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Break policy resolution. The flags only apply to block tags: an inline tag
// never breaks. For block tags an explicit per-tag flag wins and an unset
// flag defers to the global option.

func (p *Parser) breakBefore(def TagDef) bool {
	if def.Inline {
		return false
	}
	if def.BreakBefore != nil {
		return *def.BreakBefore
	}
	return p.opts.BreakBeforeBlock
}

func (p *Parser) breakAfter(def TagDef) bool {
	if def.Inline {
		return false
	}
	if def.BreakAfter != nil {
		return *def.BreakAfter
	}
	return p.opts.BreakAfterBlock
}

func (p *Parser) breakStart(def TagDef) bool {
	if def.Inline {
		return false
	}
	if def.BreakStart != nil {
		return *def.BreakStart
	}
	return p.opts.BreakStartBlock
}

func (p *Parser) breakEnd(def TagDef) bool {
	if def.Inline {
		return false
	}
	if def.BreakEnd != nil {
		return *def.BreakEnd
	}
	return p.opts.BreakEndBlock
}

// isInline reports whether the Token's tag is inline. Unknown tags count as
// inline.
func (p *Parser) isInline(t *Token) bool {
	def, ok := p.tagDef(t.Name)
	if !ok {
		return true
	}
	return def.Inline
}

// childAllowed reports whether the child Token may appear inside the parent
// tag, honoring the parent's AllowedChildren whitelist when the
// FixInvalidChildren option is enabled. Content and newline Tokens are
// matched against [ContentName].
func (p *Parser) childAllowed(parent, child *Token) bool {
	def, ok := p.tagDef(parent.Name)
	if !ok {
		return true
	}

	if !p.opts.FixInvalidChildren || len(def.AllowedChildren) == 0 {
		return true
	}

	name := child.Name
	if name == "" {
		name = ContentName
	}

	for _, allowed := range def.AllowedChildren {
		if allowed == name {
			return true
		}
	}

	return false
}
