package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		unknown    string
		candidates []string
		want       string
	}{
		{"typo", "q1-pln", []string{"q2-plan", "q1-plan"}, "Did you mean 'q1-plan'?"},
		{"too far", "launch", []string{"q1-plan"}, ""},
		{"empty set", "x", nil, ""},
		{"exact match", "blog", []string{"blog"}, ""},
		{"tie picks smallest", "ab", []string{"ac", "aa"}, "Did you mean 'aa'?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.unknown, tt.candidates); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.unknown, got, tt.want)
			}
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"twitter", "twiter", 1},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestErrorFormat(t *testing.T) {
	err := &Error{
		Code:    CodeMalformed,
		Message: "Invalid YAML syntax",
		File:    "spec.yaml",
		Line:    3,
		Column:  5,
		Fix:     "Check indentation",
	}

	out := err.Error()
	for _, want := range []string{"[MKT-VAL-001] Invalid YAML syntax", "--> spec.yaml:3:5", "= fix: Check indentation"} {
		if !strings.Contains(out, want) {
			t.Errorf("Error() missing %q in:\n%s", want, out)
		}
	}
}

func TestErrorLocation(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"file line col", Error{File: "a.yaml", Line: 2, Column: 4}, "a.yaml:2:4"},
		{"line only", Error{Line: 7}, "7"},
		{"field fallback", Error{Field: "campaigns[0].plan_id"}, "campaigns[0].plan_id"},
		{"nothing", Error{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Location(); got != tt.want {
				t.Errorf("Location() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrapAndCode(t *testing.T) {
	err := Wrap(fs.ErrNotExist, CodeMalformed, "Cannot read file", "Check the path")

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("expected wrapped fs.ErrNotExist")
	}
	if got := CodeOf(err); got != CodeMalformed {
		t.Errorf("CodeOf() = %q, want %q", got, CodeMalformed)
	}
	if !stderrors.Is(err, New(CodeMalformed, "", "")) {
		t.Error("expected code match via errors.Is")
	}
	if stderrors.Is(err, New(CodeMissingField, "", "")) {
		t.Error("unexpected match on different code")
	}
	if got := CodeOf(stderrors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestExtractContext(t *testing.T) {
	src := []byte("a: 1\nb: 2\nc: 3\nd: 4\n")

	ctx := ExtractContext(src, 2, 3, 1)
	if !strings.Contains(ctx, "-> 2 | b: 2") {
		t.Errorf("context missing marked line:\n%s", ctx)
	}
	if !strings.Contains(ctx, "1 | a: 1") || !strings.Contains(ctx, "3 | c: 3") {
		t.Errorf("context missing neighbours:\n%s", ctx)
	}
	if strings.Contains(ctx, "d: 4") {
		t.Errorf("context too wide:\n%s", ctx)
	}
	if ExtractContext(src, 99, 0, 1) != "" {
		t.Error("expected empty context for out-of-range line")
	}
}
