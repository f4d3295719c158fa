package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generateFixture = `package models

type Token struct {
	AccessToken  string ` + "`fievar:\"accessToken\"`" + `
	RefreshToken string ` + "`fievar:\",trans=c|_\"`" + `
}
`

func writeGenerateFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module models\n\ngo 1.24.0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.go"), []byte(generateFixture), 0o644))
	return dir
}

func TestGenerateAccessorsTool(t *testing.T) {
	dir := writeGenerateFixture(t)
	input := generateAccessorsInput{
		Dir:   dir,
		Types: []generateTypeInput{{Name: "Token", Kind: "fields"}},
	}
	result, output, err := handleGenerateAccessors(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.True(t, output.Success)
	assert.Equal(t, "models", output.PackageName)
	assert.Equal(t, "zz_generated_fievar.go", output.FileName)
	assert.Equal(t, 1, output.GeneratedTypes)
	assert.Equal(t, 2, output.GeneratedNames)

	// Content is returned inline when write is false, and nothing lands on
	// disk.
	assert.Contains(t, output.Content, "func (Token) Fields() []string {")
	assert.Contains(t, output.Content, `"accessToken",`)
	assert.Contains(t, output.Content, `"refresh_token",`)
	_, statErr := os.Stat(filepath.Join(dir, "zz_generated_fievar.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateAccessorsTool_Write(t *testing.T) {
	dir := writeGenerateFixture(t)
	input := generateAccessorsInput{
		Dir:   dir,
		Types: []generateTypeInput{{Name: "Token"}},
		Write: true,
	}
	result, output, err := handleGenerateAccessors(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Empty(t, output.Content)
	written, readErr := os.ReadFile(filepath.Join(dir, "zz_generated_fievar.go"))
	require.NoError(t, readErr)
	assert.Contains(t, string(written), "func (Token) Fields() []string {")
}

func TestGenerateAccessorsTool_Errors(t *testing.T) {
	dir := writeGenerateFixture(t)
	tests := []struct {
		name  string
		input generateAccessorsInput
	}{
		{
			name:  "missing dir",
			input: generateAccessorsInput{Types: []generateTypeInput{{Name: "Token"}}},
		},
		{
			name:  "no types",
			input: generateAccessorsInput{Dir: dir},
		},
		{
			name: "bad kind",
			input: generateAccessorsInput{
				Dir:   dir,
				Types: []generateTypeInput{{Name: "Token", Kind: "members"}},
			},
		},
		{
			name: "missing type",
			input: generateAccessorsInput{
				Dir:   dir,
				Types: []generateTypeInput{{Name: "Nope"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleGenerateAccessors(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestGenerateAccessorsTool_Strict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module models\n\ngo 1.24.0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.go"), []byte("package models\n\ntype Empty struct{}\n"), 0o644))

	strict := true
	input := generateAccessorsInput{
		Dir:    dir,
		Types:  []generateTypeInput{{Name: "Empty"}},
		Strict: &strict,
	}
	result, _, err := handleGenerateAccessors(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
