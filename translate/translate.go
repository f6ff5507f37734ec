/*
Package translate rewrites featural constraints into segmental constraints.

Every feature bundle of a constraint is replaced by an alternation of the
segments of its natural class:

   [+voice,+cont]X   ⇒   (a)X
   [^+voice]         ⇒   [^(a|b)]

All other text, including brackets not enclosing a feature bundle, is kept
as is. An empty natural class results in an empty alternation "()".

Typical Usage

  tr := translate.NewTranslator(table, translate.Memoize(true))
  out, err := tr.TranslateAll(constraints)

Errors

Translation is fail-fast. The first constraint which cannot be translated
aborts the batch, and the error (a *featural.Error) tells about the
constraint and its position within the batch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package translate

import (
	"strings"

	"github.com/npillmayer/featural"
	"github.com/npillmayer/featural/constraint"
	"github.com/npillmayer/featural/natclass"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Delimiters written in place of the brackets of a feature bundle.
const (
	GroupOpen            = "("
	GroupClose           = ")"
	ComplementGroupOpen  = "[^("
	ComplementGroupClose = ")]"
)

// Translator translates constraints against a fixed feature table.
// Translators may be used concurrently.
type Translator struct {
	resolver  *natclass.Resolver
	strict    bool
	memoize   bool
	workers   int
	normalize bool
	table     *featural.FeatureTable
}

// Option configures a Translator.
type Option func(*Translator)

// Strict makes translation fail with an error of kind
// featural.UnbalancedBrackets for constraints with brackets not belonging
// to a feature bundle. By default, such brackets are kept as literal text.
func Strict(b bool) Option {
	return func(tr *Translator) {
		tr.strict = b
	}
}

// Memoize caches natural classes per distinct list of feature
// specifications.
func Memoize(b bool) Option {
	return func(tr *Translator) {
		tr.memoize = b
	}
}

// Workers sets the number of goroutines TranslateAll will use. n ≤ 1
// translates sequentially (default).
func Workers(n int) Option {
	return func(tr *Translator) {
		tr.workers = n
	}
}

// Normalize puts segment names and constraints into Unicode normalization
// form NFC before matching, so that precomposed and decomposed spellings of
// a segment (e.g., "ã" as U+00E3 or as a + U+0303) are treated alike.
func Normalize(b bool) Option {
	return func(tr *Translator) {
		tr.normalize = b
	}
}

// NewTranslator creates a translator for a feature table.
//
// With option Normalize, segment names are normalized, which may fail with
// an error of kind featural.InconsistentTable if two segments of the table
// differ only in their normalization form.
func NewTranslator(table *featural.FeatureTable, opts ...Option) (*Translator, error) {
	tr := &Translator{workers: 1, table: table}
	for _, opt := range opts {
		opt(tr)
	}
	if tr.normalize {
		nfc, err := table.Map(norm.NFC.String)
		if err != nil {
			return nil, err
		}
		tr.table = nfc
	}
	tr.resolver = natclass.NewResolver(tr.table, tr.memoize)
	return tr, nil
}

// Table returns the feature table tr translates against. With option
// Normalize, this is the normalized copy of the table given to NewTranslator.
func (tr *Translator) Table() *featural.FeatureTable {
	return tr.table
}

// Translate rewrites a single constraint. Constraints without feature
// bundles are returned unchanged.
func (tr *Translator) Translate(c string) (string, error) {
	if tr.normalize {
		c = norm.NFC.String(c)
	}
	parsed, err := constraint.ParsePooled(c)
	if err != nil {
		return "", featural.InConstraint(err, c, 0)
	}
	if tr.strict && parsed.Stray > 0 {
		return "", &featural.Error{
			Kind:       featural.UnbalancedBrackets,
			Constraint: c,
			Msg:        "bracket not enclosing a feature bundle",
		}
	}
	var b strings.Builder
	b.Grow(len(c) * 2)
	for _, part := range parsed.Parts {
		if part.Type == constraint.Text {
			b.WriteString(part.Text)
			continue
		}
		alt, err := tr.resolver.Alternation(part.Specs)
		if err != nil {
			return "", featural.InConstraint(err, c, 0)
		}
		if alt == "" {
			tracer().Infof("empty natural class for [%s] in %q", part.Text, c)
		}
		if part.Complement {
			b.WriteString(ComplementGroupOpen)
			b.WriteString(alt)
			b.WriteString(ComplementGroupClose)
		} else {
			b.WriteString(GroupOpen)
			b.WriteString(alt)
			b.WriteString(GroupClose)
		}
	}
	return b.String(), nil
}

// Translate rewrites a single constraint against a feature table, using
// default options.
func Translate(c string, table *featural.FeatureTable) (string, error) {
	tr, err := NewTranslator(table)
	if err != nil {
		return "", err
	}
	return tr.Translate(c)
}

// TranslateAll translates a batch of constraints against a feature table,
// using default options. See Translator.TranslateAll.
func TranslateAll(constraints []string, table *featural.FeatureTable) ([]string, error) {
	tr, err := NewTranslator(table)
	if err != nil {
		return nil, err
	}
	return tr.TranslateAll(constraints)
}
