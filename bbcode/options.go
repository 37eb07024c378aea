package bbcode

// MathDelim defines one LaTeX delimiter pair. Display pairs start block math,
// the rest start inline math. The parser captures the interior verbatim, it
// does not validate the LaTeX itself.
type MathDelim struct {
	Open    string
	Close   string
	Display bool
}

// DefaultMathDelims returns the stock LaTeX delimiter table:
// $$...$$ and \[...\] for display math, $...$ and \(...\) for inline math.
//
// Order matters: the lexer tries display delimiters before inline ones, and
// delimiters within a group in table order, so "$$" must come before "$".
func DefaultMathDelims() []MathDelim {
	return []MathDelim{
		{Open: "$$", Close: "$$", Display: true},
		{Open: `\[`, Close: `\]`, Display: true},
		{Open: "$", Close: "$", Display: false},
		{Open: `\(`, Close: `\)`, Display: false},
	}
}

// Options is the global option set of a [Parser]. Zero values are not
// meaningful on their own; build it via [New] so every unset option falls
// back to its default.
type Options struct {
	// OpenDelim, CloseDelim and CloseMarker define the tag syntax,
	// "[", "]" and "/" by default.
	OpenDelim   string
	CloseDelim  string
	CloseMarker string

	// MathDelims is the LaTeX delimiter table.
	MathDelims []MathDelim

	// EscapeDollar enables recognition of a literal "\$" as its own lexeme
	// class, so an escaped dollar sign never starts a math span.
	EscapeDollar bool

	// Global break policy for block tags whose definition leaves the
	// corresponding per-tag flag unset.
	BreakBeforeBlock bool
	BreakAfterBlock  bool
	BreakStartBlock  bool
	BreakEndBlock    bool

	// RemoveEmptyTags enables the empty-tag pruning pass.
	RemoveEmptyTags bool

	// FixInvalidNesting enables the block-in-inline nesting repair pass.
	FixInvalidNesting bool

	// FixInvalidChildren enables demotion of children disallowed by an
	// ancestor's AllowedChildren whitelist.
	FixInvalidChildren bool
}

// Option is a decorator function which overrides one field of the default
// [Options].
type Option func(*Options)

// WithTagDelims sets the tag delimiters and the closing marker.
func WithTagDelims(open, close, closeMarker string) Option {
	return func(o *Options) {
		o.OpenDelim = open
		o.CloseDelim = close
		o.CloseMarker = closeMarker
	}
}

// WithMathDelims replaces the LaTeX delimiter table.
func WithMathDelims(delims ...MathDelim) Option {
	return func(o *Options) {
		o.MathDelims = delims
	}
}

// WithEscapeDollar toggles recognition of the "\$" escape lexeme.
func WithEscapeDollar(v bool) Option {
	return func(o *Options) {
		o.EscapeDollar = v
	}
}

// WithBlockBreaks sets the four global break flags for block tags.
func WithBlockBreaks(before, after, start, end bool) Option {
	return func(o *Options) {
		o.BreakBeforeBlock = before
		o.BreakAfterBlock = after
		o.BreakStartBlock = start
		o.BreakEndBlock = end
	}
}

// WithRemoveEmptyTags toggles the empty-tag pruning pass.
func WithRemoveEmptyTags(v bool) Option {
	return func(o *Options) {
		o.RemoveEmptyTags = v
	}
}

// WithFixInvalidNesting toggles the nesting repair pass.
func WithFixInvalidNesting(v bool) Option {
	return func(o *Options) {
		o.FixInvalidNesting = v
	}
}

// WithFixInvalidChildren toggles suppression of disallowed children.
func WithFixInvalidChildren(v bool) Option {
	return func(o *Options) {
		o.FixInvalidChildren = v
	}
}

// DefaultOptions returns the fixed defaults every [Option] is merged over.
func DefaultOptions() Options {
	return Options{
		OpenDelim:          "[",
		CloseDelim:         "]",
		CloseMarker:        "/",
		MathDelims:         DefaultMathDelims(),
		EscapeDollar:       true,
		BreakBeforeBlock:   false,
		BreakAfterBlock:    true,
		BreakStartBlock:    false,
		BreakEndBlock:      false,
		RemoveEmptyTags:    true,
		FixInvalidNesting:  true,
		FixInvalidChildren: true,
	}
}
