package translate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/featural"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func abc(t *testing.T) *featural.FeatureTable {
	table := featural.NewFeatureTable("voice", "cont")
	for _, row := range [][]string{
		{"a", "+", "+"},
		{"b", "+", "-"},
		{"c", "-", "+"},
	} {
		if err := table.AddSegment(row[0], row[1:]...); err != nil {
			t.Fatal(err)
		}
	}
	return table
}

func TestTranslate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := abc(t)
	for i, tc := range []struct {
		in, out string
	}{
		{"[+voice,+cont]X", "(a)X"},
		{"[^+voice]", "[^(a|b)]"},
		{"[+voice]", "(a|b)"},
		{"*[+voice][-voice]", "*(a|b)(c)"},
		{"#[-voice,-cont]", "#()"},
		{"#[^-voice,-cont]", "#[^()]"},
		{"[+cont]\tcomment", "(a|c)\tcomment"},
		{"[[+voice]]", "[(a|b)]"},
		{"[+voice", "[+voice"},
		{"+voice]", "+voice]"},
		{"a]b[", "a]b["},
		{"", ""},
	} {
		out, err := Translate(tc.in, table)
		if err != nil {
			t.Errorf("test #%d: %v", i, err)
			continue
		}
		if out != tc.out {
			t.Errorf("test #%d: %q should translate to %q, is %q", i, tc.in, tc.out, out)
		}
	}
}

func TestBracketFreeIsIdentity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	table := abc(t)
	for _, in := range []string{"", "abc", "*a b c", "(a|b)", "^+voice,-cont", "   ", "ŋ̊ʔ"} {
		out, err := Translate(in, table)
		if err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Errorf("%q should pass unchanged, is %q", in, out)
		}
	}
}

func TestTranslateErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	table := abc(t)
	_, err := Translate("V[+nasal]", table)
	if !errors.Is(err, featural.ErrMalformedSpecification) {
		t.Errorf("expected MalformedSpecification, have %v", err)
	}
	var e *featural.Error
	if !errors.As(err, &e) || e.Constraint != "V[+nasal]" || e.Feature != "nasal" {
		t.Errorf("error should name constraint and feature, is %v", err)
	}
	if _, err = Translate("V[]", table); featural.KindOf(err) != featural.SpecSyntax {
		t.Errorf("expected SpecSyntax for empty group, have %v", err)
	}
	if _, err = Translate("V[+voice, -cont]", table); featural.KindOf(err) != featural.MalformedSpecification {
		t.Errorf("expected MalformedSpecification for feature ' -cont', have %v", err)
	}
}

func TestStrict(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tr, err := NewTranslator(abc(t), Strict(true))
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{"[+voice", "[[+voice]]", "x]"} {
		if _, err := tr.Translate(in); !errors.Is(err, featural.ErrUnbalancedBrackets) {
			t.Errorf("%q: expected UnbalancedBrackets, have %v", in, err)
		}
	}
	if out, err := tr.Translate("[+voice]x"); err != nil || out != "(a|b)x" {
		t.Errorf("balanced constraint should translate in strict mode, have %q, %v", out, err)
	}
}

func TestNormalize(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	table := featural.NewFeatureTable("nasal")
	if err := table.AddSegment("a\u0303", "+"); err != nil { // decomposed
		t.Fatal(err)
	}
	if err := table.AddSegment("a", "-"); err != nil {
		t.Fatal(err)
	}
	tr, err := NewTranslator(table, Normalize(true))
	if err != nil {
		t.Fatal(err)
	}
	out, err := tr.Translate("[+nasal]a\u0303")
	if err != nil {
		t.Fatal(err)
	}
	if out != "(\u00e3)\u00e3" {
		t.Errorf("expected precomposed output, have %+q", out)
	}
	// two spellings of one segment collapse
	if err = table.AddSegment("\u00e3", "+"); err != nil {
		t.Fatal(err)
	}
	if _, err = NewTranslator(table, Normalize(true)); featural.KindOf(err) != featural.InconsistentTable {
		t.Errorf("expected InconsistentTable for duplicate normalized segment, have %v", err)
	}
	if _, err = NewTranslator(table); err != nil {
		t.Errorf("without normalization, both spellings are distinct segments: %v", err)
	}
}

func TestTranslateAllOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	table := abc(t)
	var in, expected []string
	for i := 0; i < 200; i++ {
		switch i % 4 {
		case 0:
			in, expected = append(in, fmt.Sprintf("%d[+voice]", i)), append(expected, fmt.Sprintf("%d(a|b)", i))
		case 1:
			in, expected = append(in, fmt.Sprintf("[^-voice]%d", i)), append(expected, fmt.Sprintf("[^(c)]%d", i))
		case 2:
			in, expected = append(in, "dup"), append(expected, "dup")
		default:
			in, expected = append(in, "[+cont,+voice]"), append(expected, "(a)")
		}
	}
	for _, opts := range [][]Option{
		nil,
		{Memoize(true)},
		{Workers(4)},
		{Workers(8), Memoize(true)},
	} {
		tr, err := NewTranslator(table, opts...)
		if err != nil {
			t.Fatal(err)
		}
		out, err := tr.TranslateAll(in)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != len(in) {
			t.Fatalf("expected %d results, have %d", len(in), len(out))
		}
		for i := range out {
			if out[i] != expected[i] {
				t.Errorf("workers=%d: #%d should be %q, is %q", tr.workers, i, expected[i], out[i])
				break
			}
		}
	}
}

func TestTranslateAllFailFast(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	in := make([]string, 100)
	for i := range in {
		in[i] = "[+voice]"
	}
	in[41] = "[+nasal]"
	in[77] = "[+labial]"
	for _, w := range []int{1, 3, 16} {
		tr, _ := NewTranslator(abc(t), Workers(w))
		out, err := tr.TranslateAll(in)
		if out != nil {
			t.Errorf("workers=%d: expected no output on error", w)
		}
		var e *featural.Error
		if !errors.As(err, &e) {
			t.Fatalf("workers=%d: expected *featural.Error, have %v", w, err)
		}
		if e.Line != 42 || e.Feature != "nasal" {
			t.Errorf("workers=%d: expected error for constraint #42, have %v", w, err)
		}
	}
}

func TestTranslateAllEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	out, err := TranslateAll(nil, abc(t))
	if err != nil || len(out) != 0 {
		t.Errorf("expected empty result, have %v, %v", out, err)
	}
}

func ExampleTranslateAll() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	table, err := featural.LoadFeatureTable([][]string{
		{"", "voice", "cont"},
		{"a", "+", "+"},
		{"b", "+", "-"},
		{"c", "-", "+"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := TranslateAll([]string{"[+voice,+cont]X", "[^+voice]", "abc"}, table)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Join(out, "\n"))
	// Output:
	// (a)X
	// [^(a|b)]
	// abc
}
