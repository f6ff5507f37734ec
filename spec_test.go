package featural

import (
	"testing"
)

func TestParseSpec(t *testing.T) {
	for i, tc := range []struct {
		in, value, feature string
		ok                 bool
	}{
		{"+voice", "+", "voice", true},
		{"-cont", "-", "cont", true},
		{"0high", "0", "high", true},
		{"±ATR", "±", "ATR", true},
		{" -cont", " ", "-cont", true},
		{"+", "", "", false},
		{"", "", "", false},
		{"±", "", "", false},
	} {
		spec, err := ParseSpec(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("test #%d: %q: unexpected error state: %v", i, tc.in, err)
			continue
		}
		if !tc.ok {
			if KindOf(err) != SpecSyntax {
				t.Errorf("test #%d: %q: expected SpecSyntax error, have %v", i, tc.in, err)
			}
			continue
		}
		if spec.Value != tc.value || spec.Feature != tc.feature {
			t.Errorf("test #%d: %q: expected %q|%q, have %q|%q", i, tc.in,
				tc.value, tc.feature, spec.Value, spec.Feature)
		}
		if spec.String() != tc.in {
			t.Errorf("test #%d: String() should reproduce %q, is %q", i, tc.in, spec.String())
		}
	}
}

func TestParseSpecList(t *testing.T) {
	specs, err := ParseSpecList("+voice,-cont")
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != 2 || specs[1].Feature != "cont" {
		t.Errorf("expected 2 specs, have %v", specs)
	}
	if _, err = ParseSpecList("+voice,"); KindOf(err) != SpecSyntax {
		t.Errorf("expected trailing comma to be a syntax error, have %v", err)
	}
	if _, err = ParseSpecList(""); KindOf(err) != SpecSyntax {
		t.Errorf("expected empty list to be a syntax error, have %v", err)
	}
}

func TestSpecListKey(t *testing.T) {
	a, _ := ParseSpecList("+voice,-cont")
	b, _ := ParseSpecList("+voice,-cont")
	c, _ := ParseSpecList("-cont,+voice")
	if SpecListKey(a) != SpecListKey(b) {
		t.Errorf("identical lists should have identical keys")
	}
	if SpecListKey(a) == SpecListKey(c) {
		t.Errorf("lists in different order should have different keys")
	}
}
