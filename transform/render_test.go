package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func alignSpec(a NumAlign) *Spec {
	return &Spec{Align: a}
}

// TestRenderDigitAlignment covers the alignment symmetry for an identifier
// split into [A, "2", B].
func TestRenderDigitAlignment(t *testing.T) {
	id := Split("A2B")

	tests := []struct {
		name  string
		align NumAlign
		want  []string
	}{
		{name: "left merges onto preceding word", align: AlignLeft, want: []string{"A2", "B"}},
		{name: "right merges onto following word", align: AlignRight, want: []string{"A", "2B"}},
		{name: "middle stays standalone", align: AlignMiddle, want: []string{"A", "2", "B"}},
		{name: "no alignment behaves as ordinary word", align: AlignNone, want: []string{"A", "2", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(id, alignSpec(tt.align)))
		})
	}
}

func TestRenderDigitAlignmentEdges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		align NumAlign
		want  []string
	}{
		{name: "leading digits with left stay standalone", input: "2b", align: AlignLeft, want: []string{"2", "b"}},
		{name: "trailing digits with right stay standalone", input: "a2", align: AlignRight, want: []string{"a", "2"}},
		{name: "trailing digits with left merge", input: "a2", align: AlignLeft, want: []string{"a2"}},
		{name: "leading digits with right merge", input: "2b", align: AlignRight, want: []string{"2b"}},
		{name: "multiple runs left", input: "A2B3C", align: AlignLeft, want: []string{"A2", "B3", "C"}},
		{name: "multiple runs right", input: "A2B3C", align: AlignRight, want: []string{"A", "2B", "3C"}},
		{name: "adjacent runs chain right", input: "1_2_b", align: AlignRight, want: []string{"12b"}},
		{name: "adjacent runs collapse left", input: "a_1_2", align: AlignLeft, want: []string{"a12"}},
		{name: "no digits is a no-op", input: "aB", align: AlignMiddle, want: []string{"a", "B"}},
		{name: "only digits", input: "42", align: AlignLeft, want: []string{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(Split(tt.input), alignSpec(tt.align)))
		})
	}
}

func TestRenderCaseResolution(t *testing.T) {
	tests := []struct {
		name  string
		input string
		expr  string
		want  []string
	}{
		{
			name:  "uniform rule hits every word",
			input: "OneTwoThree",
			expr:  "c",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "first rest at word level",
			input: "OneTwoThree",
			expr:  "c Cc",
			want:  []string{"one", "Two", "Three"},
		},
		{
			name:  "first middle last at word level",
			input: "OneTwoThree",
			expr:  "C c Cc",
			want:  []string{"ONE", "two", "Three"},
		},
		{
			name:  "single word uses the first rule",
			input: "word",
			expr:  "C c",
			want:  []string{"WORD"},
		},
		{
			name:  "single character word uses the first character rule",
			input: "a",
			expr:  "Cc",
			want:  []string{"A"},
		},
		{
			name:  "two character word uses first and last",
			input: "ab",
			expr:  "CcC",
			want:  []string{"AB"},
		},
		{
			name:  "keep leaves characters alone",
			input: "MiXed",
			expr:  "*",
			want:  []string{"Mi", "Xed"},
		},
		{
			name:  "keep at first position only",
			input: "miXed",
			expr:  "*C",
			want:  []string{"mI", "XED"},
		},
		{
			name:  "no case spec passes characters through",
			input: "MiXed7Name",
			expr:  "",
			want:  []string{"Mi", "Xed", "7", "Name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.expr)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, Render(Split(tt.input), spec))
		})
	}
}

func TestRenderEmptyIdentifier(t *testing.T) {
	assert.Nil(t, Render(nil, &Spec{}))
	assert.Nil(t, Render(Split(""), alignSpec(AlignLeft)))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a_b_c", Join([]string{"a", "b", "c"}, "_"))
	assert.Equal(t, "abc", Join([]string{"a", "b", "c"}, ""))
	assert.Equal(t, "", Join(nil, "_"))
	assert.Equal(t, "solo", Join([]string{"solo"}, "::"))
}
