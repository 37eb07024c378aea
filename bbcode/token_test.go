package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToken_SetClosing(t *testing.T) {
	closing := NewToken(KindClose, "b", "[/b]")

	open := NewToken(KindOpen, "b", "[b]")
	require.True(t, open.SetClosing(closing))
	require.Equal(t, closing, open.Closing)

	math := NewToken(KindMathOpenInline, "$", "$")
	require.True(t, math.SetClosing(NewToken(KindMathCloseInline, "$", "$")))

	content := NewToken(KindContent, ContentName, "text")
	require.False(t, content.SetClosing(closing))
	require.Nil(t, content.Closing)

	require.False(t, closing.SetClosing(closing))
}

func TestToken_Clone(t *testing.T) {
	orig := NewToken(KindOpen, "quote", "[quote=x]")
	orig.Attributes = map[string]string{DefaultAttrKey: "x"}
	orig.Children = []*Token{NewToken(KindContent, ContentName, "inside")}
	orig.SetClosing(NewToken(KindClose, "quote", "[/quote]"))

	c := orig.clone()

	require.Equal(t, orig.Kind, c.Kind)
	require.Equal(t, orig.Name, c.Name)
	require.Equal(t, orig.Raw, c.Raw)
	require.Empty(t, c.Children, "clones start without children")

	require.NotSame(t, orig.Closing, c.Closing)
	require.Equal(t, orig.Closing.Raw, c.Closing.Raw)

	// the attribute map is a copy, not shared state
	c.Attributes[DefaultAttrKey] = "changed"
	require.Equal(t, "x", orig.Attributes[DefaultAttrKey])
}

func TestToken_SplitAt(t *testing.T) {
	a := NewToken(KindContent, ContentName, "a")
	b := NewToken(KindOpen, "b", "[b]")
	c := NewToken(KindContent, ContentName, "c")

	parent := NewToken(KindOpen, "i", "[i]")
	parent.Children = []*Token{a, b, c}

	right := parent.splitAt(b)

	require.Equal(t, []*Token{a}, parent.Children)
	require.Equal(t, []*Token{b, c}, right.Children)
	require.Equal(t, parent.Name, right.Name)

	// growing the left side must not leak into the right side's children
	parent.Children = append(parent.Children, NewToken(KindContent, ContentName, "d"))
	require.Equal(t, b, right.Children[0])

	missing := parent.splitAt(NewToken(KindOpen, "u", "[u]"))
	require.Empty(t, missing.Children)
}

func TestToken_Source(t *testing.T) {
	inner := NewToken(KindOpen, "i", "[i]")
	inner.Children = []*Token{NewToken(KindContent, ContentName, "deep")}
	inner.SetClosing(NewToken(KindClose, "i", "[/i]"))

	outer := NewToken(KindOpen, "b", "[b]")
	outer.Children = []*Token{NewToken(KindContent, ContentName, "top "), inner}
	outer.SetClosing(NewToken(KindClose, "b", "[/b]"))

	require.Equal(t, "[b]top [i]deep[/i][/b]", outer.Source())
	require.Equal(t,
		"[b]top [i]deep[/i][/b]tail",
		Source([]*Token{outer, nil, NewToken(KindContent, ContentName, "tail")}),
	)
}

func TestToken_DemoteToContent(t *testing.T) {
	tok := NewToken(KindOpen, "b", "[b=1]")
	tok.Attributes = map[string]string{DefaultAttrKey: "1"}

	tok.demoteToContent()

	require.Equal(t, KindContent, tok.Kind)
	require.Equal(t, ContentName, tok.Name)
	require.Equal(t, "[b=1]", tok.Raw)
	require.Nil(t, tok.Attributes)
}
