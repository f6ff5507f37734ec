/* Package tabfile reads and writes the tab-delimited files of featural.

Package tabfile provides a line-level reader for tab-delimited text, as
written by spreadsheet programs, and on top of it readers for the two input
files of the featural command: feature tables and constraint lists. It also
writes translated constraints.

Input is decoded to UTF-8 before splitting. A byte order mark selects UTF-8
or UTF-16, which is what spreadsheet exports as "Unicode text" produce;
without a BOM the input is decoded with the encoding given by option
Encoding (UTF-8 by default).

Lines are terminated by '\n', a preceding '\r' is removed. Trailing white
space at the end of the input is ignored.
*/
package tabfile

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Token holds the content of a single line of input.
type Token struct {
	LineNo int      // 1-based line number
	Text   string   // line without line terminator
	Fields []string // Text split at the delimiter
}

// Field gets field #i (1…n) from the line; missing fields are empty.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// IsBlank is true for lines consisting of white space only.
func (token *Token) IsBlank() bool {
	return strings.TrimSpace(token.Text) == ""
}

func (token *Token) String() string {
	return fmt.Sprintf("line[%d %#v]", token.LineNo, token.Fields)
}

// --- Options ---------------------------------------------------------------

type config struct {
	enc   encoding.Encoding
	delim string
}

// Option configures reading of tab-delimited files.
type Option func(*config)

// Encoding sets the encoding of input without a byte order mark.
func Encoding(enc encoding.Encoding) Option {
	return func(c *config) {
		if enc != nil {
			c.enc = enc
		}
	}
}

// Delimiter sets the field delimiter. The default is '\t'.
func Delimiter(d rune) Option {
	return func(c *config) {
		c.delim = string(d)
	}
}

func makeConfig(opts []Option) *config {
	c := &config{enc: xunicode.UTF8, delim: "\t"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EncodingByName returns an encoding for a name as accepted by the
// command-line tool: utf-8, utf-16, utf-16le, utf-16be, latin1 (or
// iso-8859-1), windows-1252 and macroman. Names are case-insensitive.
func EncodingByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return xunicode.UTF8, nil
	case "utf-16", "utf16":
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.ExpectBOM), nil
	case "utf-16le":
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM), nil
	case "utf-16be":
		return xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM), nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "macroman", "macintosh":
		return charmap.Macintosh, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

// --- Parsing ---------------------------------------------------------------

// Parse reads all lines of r and calls f for each of them, in order.
// Parsing stops at the first error returned by f.
func Parse(r io.Reader, f func(token *Token) error, opts ...Option) error {
	c := makeConfig(opts)
	decoded := transform.NewReader(r, xunicode.BOMOverride(c.enc.NewDecoder()))
	b, err := ioutil.ReadAll(decoded)
	if err != nil {
		return err
	}
	text := strings.TrimRightFunc(string(b), unicode.IsSpace)
	if text == "" {
		tracer().Debugf("empty input")
		return nil
	}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		token := &Token{
			LineNo: i + 1,
			Text:   line,
			Fields: strings.Split(line, c.delim),
		}
		if err = f(token); err != nil {
			return err
		}
	}
	return nil
}
