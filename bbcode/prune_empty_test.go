package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPruneEmpty_Cascades(t *testing.T) {
	p := New(TagSet{
		"quote": NewTagDef(WithBlock(), WithNoEmpty(), WithBreakAfter(false)),
		"b":     NewTagDef(WithNoEmpty()),
	})

	// pruning the inner tag first leaves the outer one whitespace-only
	forest := p.Parse("[quote][b] [/b][/quote]")

	require.Len(t, forest, 1)
	require.Equal(t, KindContent, forest[0].Kind)
	require.Equal(t, " ", forest[0].Raw)
}

func TestPruneEmpty_TagChildCountsAsContent(t *testing.T) {
	p := New(TagSet{
		"quote": NewTagDef(WithBlock(), WithNoEmpty()),
		"img":   NewTagDef(WithSelfClosing()),
	})

	forest := p.Parse("[quote][img][/quote]")

	require.Len(t, forest, 1)
	require.Equal(t, "quote", forest[0].Name)
	require.Equal(t, "img", forest[0].Children[0].Name)
}

func TestPruneEmpty_NewlinesAreWhitespace(t *testing.T) {
	p := New(TagSet{
		"quote": NewTagDef(WithBlock(), WithNoEmpty()),
	})

	forest := p.Parse("[quote]\n \n[/quote]")

	// the leftover whitespace replaces the pruned tag in its container
	require.Len(t, forest, 3)
	for _, tok := range forest {
		require.NotEqual(t, KindOpen, tok.Kind)
	}
	require.Equal(t, "\n \n", Source(forest))
}

func TestPruneEmpty_AllowedEmptyTagStays(t *testing.T) {
	p := testParser()

	forest := p.Parse("[b][/b]")

	require.Len(t, forest, 1)
	require.Equal(t, "b", forest[0].Name)
	require.NotNil(t, forest[0].Closing)
}
