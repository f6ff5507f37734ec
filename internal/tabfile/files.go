package tabfile

import (
	"io"
	"strings"

	"github.com/npillmayer/featural"
)

// LoadFeatureTable reads a feature table. The first line is the header:
// a label for the segment column (ignored), followed by the feature names.
// Every other line holds a segment and one value per feature.
//
// Lines are handed to featural.LoadFeatureTable as rows, one row per line,
// so blank lines are skipped there and error line numbers match the input.
func LoadFeatureTable(r io.Reader, opts ...Option) (*featural.FeatureTable, error) {
	var rows [][]string
	err := Parse(r, func(token *Token) error {
		rows = append(rows, token.Fields)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	table, err := featural.LoadFeatureTable(rows)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded feature table with %d segments and %d features",
		table.Len(), len(table.Features()))
	return table, nil
}

// ReadConstraints reads a list of constraints, one per line. Only the first
// field of a line is the constraint, further fields (e.g., weights) are
// ignored. Order and duplicates are preserved, as are empty lines within the
// list.
func ReadConstraints(r io.Reader, opts ...Option) ([]string, error) {
	var constraints []string
	err := Parse(r, func(token *Token) error {
		constraints = append(constraints, token.Field(1))
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	tracer().Infof("read %d constraints", len(constraints))
	return constraints, nil
}

// WriteLines writes lines to w, separated by '\n'. There is no line
// terminator after the last line.
func WriteLines(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
