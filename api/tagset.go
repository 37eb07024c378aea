package api

import "github.com/opalarchive/parser/bbcode"

// DefaultTagSet is the tag catalog this service exposes. The parser library
// itself ships no vocabulary; everything the API understands is declared
// here.
func DefaultTagSet() bbcode.TagSet {
	return bbcode.TagSet{
		// inline formatting; empty formatting tags are pruned
		"b":   bbcode.NewTagDef(bbcode.WithNoEmpty()),
		"i":   bbcode.NewTagDef(bbcode.WithNoEmpty()),
		"u":   bbcode.NewTagDef(bbcode.WithNoEmpty()),
		"s":   bbcode.NewTagDef(bbcode.WithNoEmpty()),
		"sub": bbcode.NewTagDef(bbcode.WithNoEmpty()),
		"sup": bbcode.NewTagDef(bbcode.WithNoEmpty()),

		"url": bbcode.NewTagDef(bbcode.WithNoEmpty()),
		"img": bbcode.NewTagDef(bbcode.WithSelfClosing()),

		"quote":  bbcode.NewTagDef(bbcode.WithBlock()),
		"center": bbcode.NewTagDef(bbcode.WithBlock()),
		"hr":     bbcode.NewTagDef(bbcode.WithBlock(), bbcode.WithSelfClosing()),

		// dollars in code listings are never math
		"code": bbcode.NewTagDef(bbcode.WithBlock(), bbcode.WithNoMath()),

		// list items close each other and close with the list
		"list": bbcode.NewTagDef(
			bbcode.WithBlock(),
			bbcode.WithAllowedChildren("*", bbcode.ContentName),
		),
		"*": bbcode.NewTagDef(
			bbcode.WithBlock(),
			bbcode.WithClosedBy("*", "/list"),
		),
	}
}
