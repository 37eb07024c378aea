package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_NamesAreLowercased(t *testing.T) {
	p := testParser()

	toks := p.tokenize("[B]x[/QuOtE]")

	require.Equal(t, KindOpen, toks[0].Kind)
	require.Equal(t, "b", toks[0].Name)
	require.Equal(t, "[B]", toks[0].Raw)

	require.Equal(t, KindClose, toks[2].Kind)
	require.Equal(t, "quote", toks[2].Name)
	require.Equal(t, "[/QuOtE]", toks[2].Raw)
}

func TestClassify_UnknownTagsDemoted(t *testing.T) {
	p := testParser()

	for _, raw := range []string{"[zzz]", "[/zzz]", "[zzz=1]"} {
		toks := p.tokenize(raw)
		require.Len(t, toks, 1)
		require.Equal(t, KindContent, toks[0].Kind, "raw: %s", raw)
		require.Equal(t, ContentName, toks[0].Name)
		require.Equal(t, raw, toks[0].Raw)
	}
}

func TestClassify_EmptyNameIsContent(t *testing.T) {
	p := testParser()

	// a name must come before any whitespace or '='
	for _, raw := range []string{"[ b]", "[=5]", "[ ]"} {
		toks := p.tokenize(raw)
		require.Len(t, toks, 1)
		require.Equal(t, KindContent, toks[0].Kind, "raw: %s", raw)
	}
}

func TestClassify_OpenTagAttributes(t *testing.T) {
	p := testParser()

	toks := p.tokenize(`[quote author="John" cite=there]`)

	require.Len(t, toks, 1)
	tok := toks[0]
	require.Equal(t, KindOpen, tok.Kind)
	require.Equal(t, "quote", tok.Name)
	require.Equal(t, map[string]string{
		"author": "John",
		"cite":   "there",
	}, tok.Attributes)
}

func TestClassify_MathDelimiterKeepsLiteralName(t *testing.T) {
	p := testParser()

	toks := p.tokenize(`$$`)
	require.Equal(t, KindMathOpenDisplay, toks[0].Kind)
	require.Equal(t, "$$", toks[0].Name)

	toks = p.tokenize(`\$`)
	require.Equal(t, KindEscapeDollar, toks[0].Kind)
	require.Equal(t, `\$`, toks[0].Name)
}
