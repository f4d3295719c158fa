package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/fievar/fieverrors"
)

// TestRenderNameReferenceExamples pins the engine to the expression
// language's own reference examples, byte for byte.
func TestRenderNameReferenceExamples(t *testing.T) {
	tests := []struct {
		identifier string
		expr       string
		want       string
	}{
		{identifier: "AVeryLong0Variant", expr: "c", want: "averylong0variant"},
		{identifier: "AVeryLong1Variant", expr: "C", want: "AVERYLONG1VARIANT"},
		{identifier: "AVeryLong2Variant", expr: "1__|_", want: "A_Very_Long2_Variant"},
		{identifier: "AVeryLong5Variant", expr: "c Cc", want: "aVeryLong5Variant"},
		{identifier: "LastVeryLong7Variant", expr: "CcC cCc CcC _1_|*-*", want: "LasT*-*vERy*-*lONg*-*7*-*VarianT"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := RenderName(tt.identifier, WithExpression(tt.expr))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderNamePassthrough(t *testing.T) {
	// No expression: the raw name comes back verbatim, no splitting.
	for _, name := range []string{"id", "access_token", "ABCd", "", "  odd name  "} {
		got, err := RenderName(name)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
}

func TestRenderNameOverride(t *testing.T) {
	// Override with no expression comes back verbatim.
	got, err := RenderName("access_token", WithOverride("accessToken"))
	require.NoError(t, err)
	assert.Equal(t, "accessToken", got)

	// With an expression the pipeline runs over the override.
	got, err = RenderName("access_token",
		WithOverride("RefreshToken"),
		WithExpression("c|_"))
	require.NoError(t, err)
	assert.Equal(t, "refresh_token", got)
}

func TestRenderNameMalformedExpression(t *testing.T) {
	got, err := RenderName("AccessToken", WithExpression("c Qc"))
	require.Error(t, err)
	assert.Empty(t, got, "fails fast with no partial output")
	assert.ErrorIs(t, err, fieverrors.ErrMalformedExpression)

	var exprErr *fieverrors.ExpressionError
	require.ErrorAs(t, err, &exprErr)
	assert.Equal(t, "Qc", exprErr.Token)
}

func TestRenderNameEmptyExpression(t *testing.T) {
	// An empty expression is valid: split and rejoin with no separator.
	got, err := RenderName("access_token", WithExpression(""))
	require.NoError(t, err)
	assert.Equal(t, "accesstoken", got)

	got, err = RenderName("access_token", WithExpression("|_"))
	require.NoError(t, err)
	assert.Equal(t, "access_token", got)
}

func TestRenderNameEmptyIdentifier(t *testing.T) {
	got, err := RenderName("", WithExpression("c Cc|_"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestApplyReusesParsedSpec(t *testing.T) {
	spec, err := Parse("c|_")
	require.NoError(t, err)

	assert.Equal(t, "access_token", Apply(spec, "AccessToken"))
	assert.Equal(t, "refresh_token", Apply(spec, "RefreshToken"))
	assert.Equal(t, "a_very_long_2_variant", Apply(spec, "AVeryLong2Variant"))
}

func TestApplyAlignmentWithoutDigits(t *testing.T) {
	spec, err := Parse("1__|_")
	require.NoError(t, err)
	assert.Equal(t, "No_Digits_Here", Apply(spec, "NoDigitsHere"))
}
