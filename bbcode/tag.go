package bbcode

// TagDef contains all the info about a particular tag, relevant for the
// classification and the tree building. Tag semantics are entirely
// caller-driven: the parser ships no tag vocabulary of its own.
type TagDef struct {
	// Inline marks the tag as an inline one. Block (non-inline) tags
	// interact with the newline break policy and must not end up inside
	// inline ancestors after the nesting repair pass.
	Inline bool

	// SelfClosing tags have no closing counterpart and no children.
	SelfClosing bool

	// ClosedBy lists the names that implicitly close this tag while it is
	// the innermost open one. An opening tag name closes on open, a
	// "/"-prefixed name closes on the matching closing tag. Empty means the
	// tag is never auto-closed by siblings.
	ClosedBy []string

	// AllowedChildren is a whitelist of child names (use [ContentName] for
	// plain content and newlines). Empty means no restriction.
	AllowedChildren []string

	// AllowsEmpty set to false makes the empty-tag pruner remove the tag
	// when its content is pure whitespace.
	AllowsEmpty bool

	// AllowMath set to false demotes math delimiters inside this tag to
	// plain content.
	AllowMath bool

	// BreakBefore, BreakAfter, BreakStart and BreakEnd override the global
	// block break policy for this tag. Nil defers to the global option.
	// Only block tags break; all four are ignored while Inline is true.
	BreakBefore *bool
	BreakAfter  *bool
	BreakStart  *bool
	BreakEnd    *bool
}

// TagOption is a decorator function which fills optional fields of a [TagDef].
type TagOption func(*TagDef)

// WithBlock marks the tag as a block-level one.
func WithBlock() TagOption {
	return func(t *TagDef) {
		t.Inline = false
	}
}

// WithSelfClosing marks the tag as self-closing.
func WithSelfClosing() TagOption {
	return func(t *TagDef) {
		t.SelfClosing = true
	}
}

// WithClosedBy sets the names that implicitly close the tag.
func WithClosedBy(names ...string) TagOption {
	return func(t *TagDef) {
		t.ClosedBy = names
	}
}

// WithAllowedChildren restricts the tag's children to the given names.
func WithAllowedChildren(names ...string) TagOption {
	return func(t *TagDef) {
		t.AllowedChildren = names
	}
}

// WithNoEmpty makes the empty-tag pruner remove the tag when its content is
// pure whitespace.
func WithNoEmpty() TagOption {
	return func(t *TagDef) {
		t.AllowsEmpty = false
	}
}

// WithNoMath demotes math delimiters inside the tag to plain content.
func WithNoMath() TagOption {
	return func(t *TagDef) {
		t.AllowMath = false
	}
}

func WithBreakBefore(v bool) TagOption {
	return func(t *TagDef) {
		t.BreakBefore = &v
	}
}

func WithBreakAfter(v bool) TagOption {
	return func(t *TagDef) {
		t.BreakAfter = &v
	}
}

func WithBreakStart(v bool) TagOption {
	return func(t *TagDef) {
		t.BreakStart = &v
	}
}

func WithBreakEnd(v bool) TagOption {
	return func(t *TagDef) {
		t.BreakEnd = &v
	}
}

// NewTagDef creates a new [TagDef] with the defaults applied: inline,
// closable, allows empty content and math.
func NewTagDef(opts ...TagOption) TagDef {
	t := TagDef{
		Inline:      true,
		AllowsEmpty: true,
		AllowMath:   true,
	}

	for _, dec := range opts {
		dec(&t)
	}

	return t
}

// TagSet maps lowercase tag names to their definitions. It is read-only for
// the duration of a parse call; the parser never mutates it.
type TagSet map[string]TagDef
