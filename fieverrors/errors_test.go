package fieverrors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ExpressionError
		want string
	}{
		{
			name: "token and position",
			err:  &ExpressionError{Expr: "c Qc", Token: "Qc", Position: 2, Message: "invalid case character 'Q'"},
			want: `malformed expression "c Qc": invalid token "Qc" at offset 2: invalid case character 'Q'`,
		},
		{
			name: "no position",
			err:  &ExpressionError{Expr: "c c c c", Token: "c", Position: -1, Message: "more than 3 word rules"},
			want: `malformed expression "c c c c": invalid token "c": more than 3 word rules`,
		},
		{
			name: "bare message",
			err:  &ExpressionError{Position: -1, Message: "empty word rule"},
			want: "malformed expression: empty word rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	exprErr := &ExpressionError{Expr: "x", Position: -1}
	cfgErr := &ConfigError{Field: "types", Message: "at least one type is required"}
	genErr := &GenerateError{Package: "./models", Type: "Token", Message: "type not found"}

	assert.ErrorIs(t, exprErr, ErrMalformedExpression)
	assert.NotErrorIs(t, exprErr, ErrConfig)

	assert.ErrorIs(t, cfgErr, ErrConfig)
	assert.NotErrorIs(t, cfgErr, ErrGenerate)

	assert.ErrorIs(t, genErr, ErrGenerate)
	assert.NotErrorIs(t, genErr, ErrMalformedExpression)
}

func TestErrorsAsExtraction(t *testing.T) {
	var err error = &GenerateError{
		Package: "./models",
		Type:    "Token",
		Member:  "AccessToken",
		Message: "invalid transform annotation",
		Cause:   &ExpressionError{Expr: "c Qc", Token: "Qc", Position: 2},
	}

	var genErr *GenerateError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "Token", genErr.Type)
	assert.Equal(t, "AccessToken", genErr.Member)

	// The chained expression error is reachable through the generate error.
	var exprErr *ExpressionError
	require.ErrorAs(t, err, &exprErr)
	assert.Equal(t, "Qc", exprErr.Token)
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

func TestUnwrapChain(t *testing.T) {
	root := fs.ErrNotExist
	err := &ConfigError{Field: "config", Message: "cannot read manifest", Cause: root}

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, root, errors.Unwrap(err))
}
