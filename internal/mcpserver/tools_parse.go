package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fievar/transform"
)

type parseExpressionInput struct {
	Expression string `json:"expression" jsonschema:"The transformation expression to parse; empty is valid and means no transformation"`
}

type parseExpressionOutput struct {
	Expression string `json:"expression"`
	// WordRules lists the word rules in positional order as expression
	// literals, e.g. ["C", "c", "Cc"]. Empty when the expression has no
	// case section.
	WordRules []string `json:"word_rules,omitempty"`
	Alignment string   `json:"alignment"`
	Separator string   `json:"separator"`
}

func handleParseExpression(_ context.Context, _ *mcp.CallToolRequest, input parseExpressionInput) (*mcp.CallToolResult, parseExpressionOutput, error) {
	spec, err := transform.Parse(input.Expression)
	if err != nil {
		return errResult(err), parseExpressionOutput{}, nil
	}

	output := parseExpressionOutput{
		Expression: input.Expression,
		Alignment:  spec.Align.String(),
		Separator:  spec.Separator,
	}
	if spec.Cases != nil {
		rules := spec.Cases.Rules()
		output.WordRules = make([]string, 0, len(rules))
		for _, r := range rules {
			output.WordRules = append(output.WordRules, r.String())
		}
	}
	return nil, output, nil
}
