package featural

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies translation errors.
type ErrorKind int8

// Kinds of errors which may occur while loading tables or translating constraints.
const (
	NoError                ErrorKind = iota
	MalformedSpecification           // feature name not present in the table
	UnknownSegment                   // segment not present in the table
	SpecSyntax                       // feature specification is not <value><feature>
	InconsistentTable                // table row does not fit the header
	UnbalancedBrackets               // unmatched '[' or ']' (strict mode only)
)

const _ErrorKind_name = "NoErrorMalformedSpecificationUnknownSegmentSpecSyntaxInconsistentTableUnbalancedBrackets"

var _ErrorKind_index = [...]uint8{0, 7, 29, 43, 53, 70, 88}

func (k ErrorKind) String() string {
	if k < 0 || k >= ErrorKind(len(_ErrorKind_index)-1) {
		return "ErrorKind(" + strconv.FormatInt(int64(k), 10) + ")"
	}
	return _ErrorKind_name[_ErrorKind_index[k]:_ErrorKind_index[k+1]]
}

// Sentinel errors, one for each ErrorKind. Errors returned by this module
// wrap one of them, so clients may check with errors.Is.
var (
	ErrMalformedSpecification = errors.New("featural: feature not found in feature table")
	ErrUnknownSegment         = errors.New("featural: segment not found in feature table")
	ErrSpecSyntax             = errors.New("featural: malformed feature specification")
	ErrInconsistentTable      = errors.New("featural: inconsistent feature table")
	ErrUnbalancedBrackets     = errors.New("featural: unbalanced brackets in constraint")
)

var sentinels = [...]error{
	nil,
	ErrMalformedSpecification,
	ErrUnknownSegment,
	ErrSpecSyntax,
	ErrInconsistentTable,
	ErrUnbalancedBrackets,
}

// Error is the error type returned by table construction and translation.
// It carries as much context as is known at the point of failure; fields
// not applicable are left empty (Line is 0 if unknown).
type Error struct {
	Kind       ErrorKind
	Segment    string // segment being looked up
	Feature    string // feature name being looked up
	Spec       string // feature specification as written
	Constraint string // constraint being translated
	Line       int    // 1-based line or constraint number
	Msg        string // additional detail
}

// NewError creates an error of kind k with a message.
func NewError(k ErrorKind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Unwrap().Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Spec != "" {
		fmt.Fprintf(&b, " (specification %q)", e.Spec)
	}
	if e.Feature != "" {
		fmt.Fprintf(&b, " (feature %q)", e.Feature)
	}
	if e.Segment != "" {
		fmt.Fprintf(&b, " (segment %q)", e.Segment)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Constraint != "" {
		fmt.Fprintf(&b, " in %q", e.Constraint)
	}
	return b.String()
}

// Unwrap returns the sentinel error for e's kind.
func (e *Error) Unwrap() error {
	if e.Kind <= NoError || int(e.Kind) >= len(sentinels) {
		return errors.New("featural: unclassified error")
	}
	return sentinels[e.Kind]
}

// KindOf returns the kind of err, if err is or wraps an *Error.
// Otherwise it returns NoError.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// InConstraint decorates err with the constraint text and its line number,
// if err is an *Error without this information. Other errors are returned
// unchanged.
func InConstraint(err error, constraint string, line int) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	ee := *e
	if ee.Constraint == "" {
		ee.Constraint = constraint
	}
	if ee.Line == 0 {
		ee.Line = line
	}
	return &ee
}
