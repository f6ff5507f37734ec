/*
Package constraint splits constraint strings into literal text and feature
bundles.

A constraint is a line of arbitrary text with feature bundles in brackets:

   *[+syll][^-cons,+high]#

Package constraint recognizes a bundle only as a bracket pair immediately
enclosing a run of text without brackets. Brackets which are not part of such
a pair (unmatched or nested brackets) are kept as literal text. A bundle
starting with '^' is a complemented bundle.

   Constraint := ( Literal | Group )*
   Group      := '[' '^'? SpecList ']'
   SpecList   := Spec ( ',' Spec )*

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package constraint

import (
	"strings"

	"github.com/npillmayer/featural"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ComplementMarker introduces a complemented feature bundle.
const ComplementMarker = '^'

// PartType discriminates the parts of a constraint.
type PartType int8

// A constraint consists of literal text and feature groups.
const (
	Text PartType = iota
	Group
)

// Part is either literal text or a bracketed group of feature specifications.
// For groups, Text holds the bracket content as written (without brackets).
type Part struct {
	Type       PartType
	Text       string
	Pos        uint64
	Complement bool
	Specs      []featural.Spec
}

// Constraint is a parsed constraint string.
type Constraint struct {
	Source string
	Parts  []Part
	Stray  int // number of brackets not belonging to a group
}

// Groups returns the feature groups of c.
func (c *Constraint) Groups() []Part {
	var groups []Part
	for _, p := range c.Parts {
		if p.Type == Group {
			groups = append(groups, p)
		}
	}
	return groups
}

// Parse parses a constraint string.
//
// A malformed feature specification within a group results in an error of
// kind featural.SpecSyntax. Stray brackets do not cause an error, but are
// counted in c.Stray.
func Parse(source string) (*Constraint, error) {
	return ParseTokens(source, Split(source))
}

// ParseTokens parses an already tokenized constraint.
func ParseTokens(source string, tokens []Token) (*Constraint, error) {
	c := &Constraint{Source: source}
	var text strings.Builder
	var textpos uint64
	flush := func() {
		if text.Len() > 0 {
			c.Parts = append(c.Parts, Part{Type: Text, Text: text.String(), Pos: textpos})
			text.Reset()
		}
	}
	appendText := func(t Token) {
		if text.Len() == 0 {
			textpos = t.Pos
		}
		text.WriteString(t.Text)
	}
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Type == LBracket && i+2 < len(tokens) &&
			tokens[i+1].Type == Literal && tokens[i+2].Type == RBracket {
			g, err := makeGroup(tokens[i+1])
			if err != nil {
				return nil, err
			}
			flush()
			g.Pos = t.Pos
			c.Parts = append(c.Parts, g)
			i += 2
			continue
		}
		if t.Type != Literal {
			c.Stray++
		}
		appendText(t)
	}
	flush()
	tracer().Debugf("parsed %q into %d parts, %d stray brackets", source, len(c.Parts), c.Stray)
	return c, nil
}

func makeGroup(body Token) (Part, error) {
	g := Part{Type: Group, Text: body.Text}
	list := body.Text
	if strings.HasPrefix(list, string(ComplementMarker)) {
		g.Complement = true
		list = list[1:]
	}
	specs, err := featural.ParseSpecList(list)
	if err != nil {
		if e, ok := err.(*featural.Error); ok {
			e.Msg = "in group [" + body.Text + "]"
		}
		return g, err
	}
	g.Specs = specs
	return g, nil
}
