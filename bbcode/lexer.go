package bbcode

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// lexemeClass is one candidate classification for the next run of input.
// match returns the length of the matched prefix, or 0 when the class does
// not apply at this position.
type lexemeClass struct {
	kind  Kind
	match func(input string) int
}

// buildClasses assembles the lexeme classes in their fixed precedence order:
// escape-dollar, display math delimiters, inline math delimiters, closing
// tag, opening tag, newline. Content is the fallback, not a class.
//
// The order is load-bearing: math delimiters are checked before the generic
// tag patterns so a delimiter character inside a math span is not misread as
// a tag, and the closing pattern is checked before the opening one so
// "[/tag]" is never classified as an opening tag with an odd name.
func (p *Parser) buildClasses() {
	if p.opts.EscapeDollar {
		p.classes = append(p.classes, lexemeClass{KindEscapeDollar, matchLiteral(`\$`)})
	}

	p.classes = append(p.classes,
		lexemeClass{KindMathOpenDisplay, p.matchMathDelims(true, false)},
		lexemeClass{KindMathCloseDisplay, p.matchMathDelims(true, true)},
		lexemeClass{KindMathOpenInline, p.matchMathDelims(false, false)},
		lexemeClass{KindMathCloseInline, p.matchMathDelims(false, true)},
		lexemeClass{KindClose, matchRegexp(p.closeTagPattern())},
		lexemeClass{KindOpen, matchRegexp(p.openTagPattern())},
		lexemeClass{KindNewline, matchNewline},
	)

	p.buildContentStops()
}

// buildContentStops collects the first byte of every structurally significant
// delimiter. A content run never crosses one of these bytes.
func (p *Parser) buildContentStops() {
	p.contentStops[p.opts.OpenDelim[0]] = true
	p.contentStops['\r'] = true
	p.contentStops['\n'] = true

	if p.opts.EscapeDollar {
		p.contentStops['\\'] = true
	}

	for _, d := range p.opts.MathDelims {
		p.contentStops[d.Open[0]] = true
		p.contentStops[d.Close[0]] = true
	}
}

// openTagPattern matches an opening tag: the open delimiter, at least one
// byte that is not a delimiter, the close delimiter.
func (p *Parser) openTagPattern() *regexp.Regexp {
	return regexp.MustCompile(`^` +
		regexp.QuoteMeta(p.opts.OpenDelim) +
		`[^` + regexp.QuoteMeta(p.opts.OpenDelim+p.opts.CloseDelim) + `]+` +
		regexp.QuoteMeta(p.opts.CloseDelim))
}

// closeTagPattern matches a closing tag: like an opening one but with the
// close marker right after the open delimiter.
func (p *Parser) closeTagPattern() *regexp.Regexp {
	return regexp.MustCompile(`^` +
		regexp.QuoteMeta(p.opts.OpenDelim+p.opts.CloseMarker) +
		`[^` + regexp.QuoteMeta(p.opts.OpenDelim+p.opts.CloseDelim) + `]+` +
		regexp.QuoteMeta(p.opts.CloseDelim))
}

// matchMathDelims builds a matcher for the open or close delimiters of one
// display-ness group, tried in table order.
func (p *Parser) matchMathDelims(display, closing bool) func(string) int {
	var delims []string
	for _, d := range p.opts.MathDelims {
		if d.Display != display {
			continue
		}
		if closing {
			delims = append(delims, d.Close)
		} else {
			delims = append(delims, d.Open)
		}
	}

	return func(input string) int {
		for _, d := range delims {
			if strings.HasPrefix(input, d) {
				return len(d)
			}
		}
		return 0
	}
}

func matchLiteral(lit string) func(string) int {
	return func(input string) int {
		if strings.HasPrefix(input, lit) {
			return len(lit)
		}
		return 0
	}
}

func matchRegexp(re *regexp.Regexp) func(string) int {
	return func(input string) int {
		loc := re.FindStringIndex(input)
		if loc == nil {
			return 0
		}
		return loc[1]
	}
}

func matchNewline(input string) int {
	if strings.HasPrefix(input, "\r\n") {
		return 2
	}
	if input[0] == '\r' || input[0] == '\n' {
		return 1
	}
	return 0
}

// tokenize scans the whole input into the flat classified token stream.
// Every byte of the input ends up in exactly one token's Raw, so the stream
// round-trips to the source.
func (p *Parser) tokenize(input string) []*Token {
	var toks []*Token

	for len(input) > 0 {
		kind, width := p.nextLexeme(input)
		toks = append(toks, p.classify(kind, input[:width]))
		input = input[width:]
	}

	return toks
}

// nextLexeme commits to the first class whose pattern matches a non-empty
// prefix. When none match it consumes a run of content up to the next
// structurally significant byte, or a single rune when the input starts on
// one that matched nothing.
func (p *Parser) nextLexeme(input string) (Kind, int) {
	for _, class := range p.classes {
		if n := class.match(input); n > 0 {
			return class.kind, n
		}
	}

	if p.contentStops[input[0]] {
		_, width := utf8.DecodeRuneInString(input)
		return KindContent, width
	}

	i := 1
	for i < len(input) && !p.contentStops[input[i]] {
		i++
	}

	return KindContent, i
}
