package alphabet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []Letter
	}{
		{"", nil},
		{"TCHXD", []Letter{T, CH, X, D}},
		{"tchxd", []Letter{T, CH, X, D}},
		{"ch", []Letter{CH}},
		{"cH", []Letter{CH}},
		{"Ch", []Letter{CH}},
		{"PHWHSHTHGH", []Letter{PH, WH, SH, TH, GH}},
		{"QUNG", []Letter{QU, NG}},
		{"quick", []Letter{QU, I, C, K}},
		{"QQU", []Letter{Q, QU}},
		{"NGG", []Letter{NG, G}},
		{"CHH", []Letter{CH, H}},
		{"HC", []Letter{H, C}},
		{"doctor", []Letter{D, O, C, T, O, R}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, w.Letters()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
			if w.Len() != len(tt.want) {
				t.Errorf("Len = %d, want %d", w.Len(), len(tt.want))
			}
		})
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	upper, err := Parse("CH")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := Parse("ch")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(upper.Letters(), lower.Letters()); diff != "" {
		t.Errorf("case changed the parse (-upper +lower):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		token  string
		offset int
	}{
		{"t1d", "1", 1},
		{"hello world", " ", 5},
		{"chö", "ö", 2},
		{"-", "-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := Parse(tt.in)
			if w.Len() != 0 {
				t.Errorf("partial word %s returned on failure", w)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if pe.Token != tt.token || pe.Offset != tt.offset {
				t.Errorf("ParseError = {%q, %d}, want {%q, %d}", pe.Token, pe.Offset, tt.token, tt.offset)
			}
			if !errs.Is(err, errs.ErrCodeInvalidLetter) {
				t.Errorf("code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidLetter)
			}
		})
	}
}

func TestParseTracer(t *testing.T) {
	type event struct {
		Offset int
		Token  string
	}
	var got []event
	tr := TracerFunc(func(offset int, token string) {
		got = append(got, event{offset, token})
	})

	if _, err := Parse("tchxd", WithTracer(tr)); err != nil {
		t.Fatal(err)
	}
	want := []event{{0, "T"}, {1, "CH"}, {3, "X"}, {4, "D"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("traced tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestWord(t *testing.T) {
	w := NewWord(T, A, CH, E, X, D)
	if got := w.Consonants(); got != 4 {
		t.Errorf("Consonants = %d, want 4", got)
	}
	if got := w.String(); got != "TACHEXD" {
		t.Errorf("String = %q", got)
	}

	letters := w.Letters()
	letters[0] = B
	if w.At(0) != T {
		t.Error("Letters exposed the internal slice")
	}
}
