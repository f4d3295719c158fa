package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionTool(t *testing.T) {
	input := parseExpressionInput{Expression: "C cCc Cc _1_|-"}
	result, output, err := handleParseExpression(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, []string{"C", "cCc", "Cc"}, output.WordRules)
	assert.Equal(t, "middle", output.Alignment)
	assert.Equal(t, "-", output.Separator)
}

func TestParseExpressionTool_Empty(t *testing.T) {
	result, output, err := handleParseExpression(context.Background(), &mcp.CallToolRequest{}, parseExpressionInput{})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Empty(t, output.WordRules)
	assert.Equal(t, "none", output.Alignment)
	assert.Equal(t, "", output.Separator)
}

func TestParseExpressionTool_SeparatorOnly(t *testing.T) {
	input := parseExpressionInput{Expression: "|_"}
	result, output, err := handleParseExpression(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Empty(t, output.WordRules)
	assert.Equal(t, "_", output.Separator)
}

func TestParseExpressionTool_Malformed(t *testing.T) {
	input := parseExpressionInput{Expression: "c Qc"}
	result, _, err := handleParseExpression(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
