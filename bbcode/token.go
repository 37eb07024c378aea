package bbcode

import "strings"

// Kind defines the type of the [Token], e.g. an opening or a closing tag,
// a math delimiter, a newline, or plain content.
type Kind int

const (
	// KindContent means the Token contains plain text.
	KindContent Kind = iota

	// KindNewline means the Token is a single line terminator.
	KindNewline

	// KindOpen means the Token is an opening tag known to the tag set.
	KindOpen

	// KindClose means the Token is a closing tag known to the tag set.
	KindClose

	// KindEscapeDollar means the Token is an escaped dollar sign.
	KindEscapeDollar

	// KindMathOpenDisplay means the Token starts a display (block) math span.
	KindMathOpenDisplay

	// KindMathCloseDisplay means the Token ends a display math span.
	KindMathCloseDisplay

	// KindMathOpenInline means the Token starts an inline math span.
	KindMathOpenInline

	// KindMathCloseInline means the Token ends an inline math span.
	KindMathCloseInline
)

// ContentName is the sentinel name carried by content and newline Tokens.
const ContentName = "#"

// Token is a node of the parsed forest. It is both the unit of the lexer
// output (a flat stream, no children yet) and of the final tree.
type Token struct {
	// Kind defines the type of the Token.
	Kind Kind

	// Name is the lowercased tag name for tag Tokens, the literal delimiter
	// string for math Tokens, or [ContentName] for content and newlines.
	Name string

	// Raw is the exact source substring this Token was derived from.
	// Concatenating Raw over the whole forest (children and closing Tokens
	// included) reconstructs the original input.
	Raw string

	// Attributes maps lowercased attribute names to their values.
	// It is only ever non-empty when Kind is [KindOpen].
	Attributes map[string]string

	// Children is the ordered list of child Tokens. The Token owns its
	// children outright, there are no back references.
	Children []*Token

	// Closing is the matching closing Token. Only opening tags and math
	// opening Tokens can carry one. The closing Token never appears in any
	// children list.
	Closing *Token

	// Err is set only on a math opening Token whose closing delimiter was
	// never found. It is the sole diagnostic the parser reports.
	Err string
}

// NewToken creates a Token of the given kind, name and raw source text.
func NewToken(kind Kind, name, raw string) *Token {
	return &Token{Kind: kind, Name: name, Raw: raw}
}

// canClose reports whether a Token of this kind may carry a closing reference.
func (t *Token) canClose() bool {
	switch t.Kind {
	case KindOpen, KindMathOpenDisplay, KindMathOpenInline:
		return true
	}
	return false
}

// SetClosing attaches the matching closing Token. It reports false and leaves
// the Token untouched when the receiver's kind cannot carry a closing
// reference.
func (t *Token) SetClosing(closing *Token) bool {
	if !t.canClose() {
		return false
	}
	t.Closing = closing
	return true
}

// clone returns a shallow copy of the Token: same kind, name, raw text and
// attributes, a cloned closing Token, and no children.
func (t *Token) clone() *Token {
	c := &Token{
		Kind: t.Kind,
		Name: t.Name,
		Raw:  t.Raw,
		Err:  t.Err,
	}

	if len(t.Attributes) > 0 {
		c.Attributes = make(map[string]string, len(t.Attributes))
		for k, v := range t.Attributes {
			c.Attributes[k] = v
		}
	}

	if t.Closing != nil {
		c.Closing = t.Closing.clone()
	}

	return c
}

// splitAt splits the Token's children at the given child and returns a clone
// holding the child and everything after it. The receiver keeps the children
// before the split point. When the child is not found the clone is empty.
func (t *Token) splitAt(child *Token) *Token {
	right := t.clone()

	idx := indexOfToken(t.Children, child)
	if idx > -1 {
		tail := t.Children[idx:]
		right.Children = make([]*Token, len(tail))
		copy(right.Children, tail)

		// full slice expression so later appends to the left side cannot
		// clobber the right side's backing array
		t.Children = t.Children[:idx:idx]
	}

	return right
}

// demoteToContent turns the Token into a plain content leaf, keeping its raw
// source text.
func (t *Token) demoteToContent() {
	t.Kind = KindContent
	t.Name = ContentName
	t.Attributes = nil
}

// Source reconstructs the exact source substring this Token was derived from,
// including its children and the closing Token.
func (t *Token) Source() string {
	var sb strings.Builder
	t.writeSource(&sb)
	return sb.String()
}

func (t *Token) writeSource(sb *strings.Builder) {
	sb.WriteString(t.Raw)

	for _, child := range t.Children {
		if child != nil {
			child.writeSource(sb)
		}
	}

	if t.Closing != nil {
		sb.WriteString(t.Closing.Raw)
	}
}

// Source concatenates the raw source of every Token in the forest, in order.
// For a forest produced from an input with no unterminated math span the
// result is the original input.
func Source(forest []*Token) string {
	var sb strings.Builder
	for _, t := range forest {
		if t != nil {
			t.writeSource(&sb)
		}
	}
	return sb.String()
}

// indexOfToken returns the index of the exact Token instance in the list,
// or -1 when absent.
func indexOfToken(list []*Token, t *Token) int {
	for i := range list {
		if list[i] == t {
			return i
		}
	}
	return -1
}
