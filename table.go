package featural

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// EmptySegment is the row label reserved for "no segment". Rows with this
// label are tolerated in table sources but never become segments.
const EmptySegment = "empty"

// Segment is a symbolic identifier for a sound, e.g. "p" or "tʃ".
type Segment = string

// Feature is the name of a phonological feature, e.g. "voice".
type Feature = string

// FeatureTable maps segments to their feature values. It is total: every
// segment carries exactly one value for every feature.
//
// Segments are kept in insertion order, which determines the order of
// segments within natural classes.
//
// A FeatureTable is not safe for concurrent modification, but may be read
// concurrently once fully built.
type FeatureTable struct {
	features []Feature
	featinx  map[Feature]int
	segments []Segment
	values   map[Segment][]string
}

// NewFeatureTable creates an empty table for a fixed list of feature names.
// Feature names are case-sensitive. Duplicate names are not checked here;
// see AddSegment.
func NewFeatureTable(features ...Feature) *FeatureTable {
	t := &FeatureTable{
		features: make([]Feature, len(features)),
		featinx:  make(map[Feature]int, len(features)),
		values:   make(map[Segment][]string),
	}
	copy(t.features, features)
	for i, f := range features {
		if _, dup := t.featinx[f]; !dup {
			t.featinx[f] = i
		}
	}
	return t
}

// AddSegment appends a segment with one value per feature, given in the
// order of the table's features.
//
// A segment labelled EmptySegment is skipped silently. A value count not
// matching the number of features, or a segment already present, results
// in an error of kind InconsistentTable.
func (t *FeatureTable) AddSegment(seg Segment, values ...string) error {
	if len(values) != len(t.features) {
		return &Error{
			Kind:    InconsistentTable,
			Segment: seg,
			Msg:     fmt.Sprintf("%d values for %d features", len(values), len(t.features)),
		}
	}
	if seg == EmptySegment {
		tracer().Debugf("skipping row %q", seg)
		return nil
	}
	if _, exists := t.values[seg]; exists {
		return &Error{Kind: InconsistentTable, Segment: seg, Msg: "duplicate segment"}
	}
	v := make([]string, len(values))
	copy(v, values)
	t.segments = append(t.segments, seg)
	t.values[seg] = v
	return nil
}

// Features returns the feature names in header order.
func (t *FeatureTable) Features() []Feature {
	f := make([]Feature, len(t.features))
	copy(f, t.features)
	return f
}

// Segments returns all segments of the table in insertion order.
// Clients may modify the returned slice.
func (t *FeatureTable) Segments() []Segment {
	s := make([]Segment, len(t.segments))
	copy(s, t.segments)
	return s
}

// Len returns the number of segments.
func (t *FeatureTable) Len() int {
	return len(t.segments)
}

// HasFeature is true if f is one of the table's features.
func (t *FeatureTable) HasFeature(f Feature) bool {
	_, ok := t.featinx[f]
	return ok
}

// HasSegment is true if seg is a segment of the table.
func (t *FeatureTable) HasSegment(seg Segment) bool {
	_, ok := t.values[seg]
	return ok
}

// Value returns the value of feature f for segment seg.
//
// An unknown segment yields an error of kind UnknownSegment, an unknown
// feature one of kind MalformedSpecification.
func (t *FeatureTable) Value(seg Segment, f Feature) (string, error) {
	vals, ok := t.values[seg]
	if !ok {
		return "", &Error{Kind: UnknownSegment, Segment: seg}
	}
	i, ok := t.featinx[f]
	if !ok {
		return "", &Error{Kind: MalformedSpecification, Segment: seg, Feature: f}
	}
	return vals[i], nil
}

// Matches is true if segment seg carries the value required by spec.
func (t *FeatureTable) Matches(seg Segment, spec Spec) (bool, error) {
	v, err := t.Value(seg, spec.Feature)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Spec = spec.String()
		}
		return false, err
	}
	return v == spec.Value, nil
}

// Map applies f to every segment name and returns a new table with the
// mapped names. Segments mapping to the same name result in an error of
// kind InconsistentTable. Used for Unicode normalization of segment names.
func (t *FeatureTable) Map(f func(Segment) Segment) (*FeatureTable, error) {
	m := NewFeatureTable(t.features...)
	for _, seg := range t.segments {
		if err := m.AddSegment(f(seg), t.values[seg]...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoadFeatureTable creates a feature table from raw rows. The first row is
// the header: a label for the segment column, followed by the feature names.
// Every other row holds a segment and one value per feature. Blank rows,
// i.e. rows without fields or with white space only, are skipped.
//
// Errors report the 1-based number of the offending row in field Line.
func LoadFeatureTable(rows [][]string) (*FeatureTable, error) {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, &Error{Kind: InconsistentTable, Line: 1, Msg: "header names no features"}
	}
	t := NewFeatureTable(rows[0][1:]...)
	tracer().Debugf("features: %v", rows[0][1:])
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		if err := t.AddSegment(row[0], row[1:]...); err != nil {
			if e, ok := err.(*Error); ok {
				e.Line = i + 2
			}
			return nil, err
		}
	}
	tracer().Debugf("feature table with %d segments", t.Len())
	return t, nil
}

func isBlank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
