package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	p := testParser()

	cases := []struct {
		name string
		text string
		want map[string]string
	}{
		{
			name: "default attribute",
			text: "=John",
			want: map[string]string{DefaultAttrKey: "John"},
		},
		{
			name: "default attribute with spaces and no other pairs",
			text: "=John Smith",
			want: map[string]string{DefaultAttrKey: "John Smith"},
		},
		{
			name: "quoted default attribute",
			text: `="John Smith"`,
			want: map[string]string{DefaultAttrKey: "John Smith"},
		},
		{
			name: "default attribute followed by named pairs",
			text: "=John cite=here",
			want: map[string]string{DefaultAttrKey: "John", "cite": "here"},
		},
		{
			name: "named pairs",
			text: " width=100 height=50",
			want: map[string]string{"width": "100", "height": "50"},
		},
		{
			name: "keys are lowercased",
			text: " WIDTH=5",
			want: map[string]string{"width": "5"},
		},
		{
			name: "quoted value with escaped quotes",
			text: ` author="some \"one\"" x=y`,
			want: map[string]string{"author": `some "one"`, "x": "y"},
		},
		{
			name: "single quoted value",
			text: ` msg='a b c'`,
			want: map[string]string{"msg": "a b c"},
		},
		{
			name: "missing value yields nothing",
			text: " x=",
			want: map[string]string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.parseAttributes(tc.text))
		})
	}
}

func TestStripQuotes(t *testing.T) {
	require.Equal(t, "plain", stripQuotes("plain"))
	require.Equal(t, "quoted", stripQuotes(`"quoted"`))
	require.Equal(t, "quoted", stripQuotes("'quoted'"))
	require.Equal(t, `"mismatched'`, stripQuotes(`"mismatched'`))
	require.Equal(t, `has "inner"`, stripQuotes(`"has \"inner\""`))
	require.Equal(t, `"`, stripQuotes(`"`))
}
