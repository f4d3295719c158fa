package generator

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	content, err := emit("models", DefaultOutputFile, []accessorData{
		{
			Type:     "Token",
			FuncName: "Fields",
			KindWord: "field",
			Names:    []string{"accessToken", "refresh_token"},
		},
		{
			Type:     "Color",
			FuncName: "Variants",
			KindWord: "variant",
			Names:    []string{"red", "sky_blue"},
		},
	})
	require.NoError(t, err)

	src := string(content)
	assert.Contains(t, src, "// Code generated by fievar. DO NOT EDIT.")
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "func (Token) Fields() []string {")
	assert.Contains(t, src, `"accessToken",`)
	assert.Contains(t, src, `"refresh_token",`)
	assert.Contains(t, src, "func (Color) Variants() []string {")
	assert.Contains(t, src, `"sky_blue",`)

	// Output is already gofmt-clean.
	formatted, err := format.Source(content)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), src)
}

func TestEmitEmptyAccessor(t *testing.T) {
	content, err := emit("models", DefaultOutputFile, []accessorData{
		{Type: "Empty", FuncName: "Fields", KindWord: "field"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(content), "func (Empty) Fields() []string {")
	assert.Contains(t, string(content), "return []string{}")
}

func TestEmitQuotesSpecialNames(t *testing.T) {
	content, err := emit("models", DefaultOutputFile, []accessorData{
		{
			Type:     "Odd",
			FuncName: "Fields",
			KindWord: "field",
			Names:    []string{`with"quote`, "with\tspace"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, string(content), `"with\"quote",`)
	assert.Contains(t, string(content), `"with\tspace",`)
}

func TestAccessorName(t *testing.T) {
	tests := []struct {
		name string
		spec TypeSpec
		want string
	}{
		{name: "default fields", spec: TypeSpec{Name: "Token", Kind: KindFields}, want: "Fields"},
		{name: "default variants", spec: TypeSpec{Name: "Color", Kind: KindVariants}, want: "Variants"},
		{name: "custom accessor normalized", spec: TypeSpec{Name: "Token", Accessor: "field_names"}, want: "FieldNames"},
		{name: "custom accessor already exported", spec: TypeSpec{Name: "Token", Accessor: "RawNames"}, want: "RawNames"},
		{name: "reserved word escaped", spec: TypeSpec{Name: "Token", Accessor: "range"}, want: "Range_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accessorName(tt.spec))
		})
	}
}
