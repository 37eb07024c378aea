package bbcode

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// DefaultAttrKey is the attribute name used for the shorthand form
// "[tag=value]", where the value belongs to the tag itself rather than to a
// named attribute.
const DefaultAttrKey = "defaultattr"

// attrPairRegex extracts repeated key=value pairs. A value is either quoted
// (with backslash escapes) or bare, in which case it runs until the start of
// the next pair. The bare-value arm needs a lookahead, which the standard
// RE2 engine cannot express, hence regexp2.
var attrPairRegex = regexp2.MustCompile(
	`([^\s=]+)=(?:(["'])((?:\\.|(?!\2).)*?)\2|((?:.(?!\s\S+=))*.))`,
	regexp2.None,
)

// parseAttributes turns the raw attribute text of an opening tag into a map
// of lowercased keys to unquoted values. Malformed attribute text degrades to
// an empty value for the affected key, it never raises.
func (p *Parser) parseAttributes(text string) map[string]string {
	attrs := make(map[string]string)

	// "[tag=value]" with no other '=' present is a single default attribute
	if strings.HasPrefix(text, "=") && !strings.Contains(text[1:], "=") {
		attrs[DefaultAttrKey] = stripQuotes(text[1:])
		return attrs
	}

	// a leading '=' with more pairs behind it still names the default
	// attribute, e.g. "[quote=someone cite=elsewhere]"
	if strings.HasPrefix(text, "=") {
		text = DefaultAttrKey + text
	}

	m, err := attrPairRegex.FindStringMatch(text)
	for err == nil && m != nil {
		groups := m.Groups()

		key := strings.ToLower(groups[1].String())

		value := ""
		if groups[2].Length > 0 {
			// quoted value, unescape backslash escapes
			value = unescapeBackslashes(groups[3].String())
		} else {
			value = groups[4].String()
		}

		attrs[key] = value

		m, err = attrPairRegex.FindNextMatch(m)
	}

	return attrs
}

// stripQuotes removes one pair of matching surrounding quotes and resolves
// backslash escapes.
func stripQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return unescapeBackslashes(s)
}

func unescapeBackslashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}

	return sb.String()
}
