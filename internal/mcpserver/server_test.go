package mcpserver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("cannot load package /home/user/project/models: no go files"),
			want: "cannot load package <path>: no go files",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf(`malformed expression "c Qc": invalid token "Qc" at offset 2`),
			want: `malformed expression "c Qc": invalid token "Qc" at offset 2`,
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("scanned /tmp/a and /tmp/b"),
			want: "scanned <path> and <path>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(fmt.Errorf("boom"))
	assert.True(t, result.IsError)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	got := makeSlice[string](3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 3, cap(got))
}
