// # BBCode + LaTeX markup parser.
//
// Package bbcode converts a BBCode-like tag language interleaved with LaTeX
// math spans into a well-formed forest of tokens, ready for rendering by a
// caller-supplied set of tag handlers. The package itself renders nothing,
// validates no LaTeX and ships no tag vocabulary: tag semantics come
// entirely from the [TagSet] the caller passes to [New].
//
// # Pipeline.
//
//  1. The lexer scans the raw text into a flat stream of typed lexemes under
//     a fixed precedence order (escape, math delimiters, closing tag,
//     opening tag, newline, content).
//
//  2. The classifier names each tag lexeme and parses its attributes.
//     Unknown or malformed tags become plain content, never errors.
//
//  3. The tree builder resolves the stream into a forest with an explicit
//     open-tag stack: auto-closing via ClosedBy, math span capture with
//     unterminated-span recovery, out-of-order closes repaired by cloning.
//
//  4. Three repair passes run over the forest: nesting repair splits inline
//     tags around block tags, the newline normalizer drops newlines made
//     redundant by block break policy, and the empty-tag pruner removes
//     tags that must not be empty.
//
// # Notes and Policies.
//
//  1. Parse never fails. Malformed input degrades to content; the only
//     reported condition is the Err field on an unterminated math span.
//
//  2. Concatenating Raw over the returned forest reproduces the input
//     exactly, as long as the input had no unterminated math span and no
//     repair pass had to rewrite the tree.
//
//  3. A [Parser] is immutable after [New] and safe for concurrent use;
//     every call builds a fresh stack and forest.
package bbcode
