package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fievar/transform"
)

type renderNameInput struct {
	Identifiers []string `json:"identifiers"          jsonschema:"Identifiers to render"`
	Expression  string   `json:"expression,omitempty" jsonschema:"Transformation expression; empty means render unchanged"`
	Override    string   `json:"override,omitempty"   jsonschema:"Replacement identifier applied before the expression; requires exactly one identifier"`
}

type renderedName struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type renderNameOutput struct {
	Expression string         `json:"expression,omitempty"`
	Results    []renderedName `json:"results"`
}

func handleRenderName(_ context.Context, _ *mcp.CallToolRequest, input renderNameInput) (*mcp.CallToolResult, renderNameOutput, error) {
	if len(input.Identifiers) == 0 {
		return errResult(fmt.Errorf("at least one identifier is required")), renderNameOutput{}, nil
	}
	if len(input.Identifiers) > cfg.RenderLimit {
		return errResult(fmt.Errorf("too many identifiers: %d exceeds limit %d", len(input.Identifiers), cfg.RenderLimit)), renderNameOutput{}, nil
	}
	if input.Override != "" && len(input.Identifiers) != 1 {
		return errResult(fmt.Errorf("override requires exactly one identifier")), renderNameOutput{}, nil
	}

	var opts []transform.NameOption
	if input.Override != "" {
		opts = append(opts, transform.WithOverride(input.Override))
	}
	if input.Expression != "" {
		opts = append(opts, transform.WithExpression(input.Expression))
	}

	output := renderNameOutput{
		Expression: input.Expression,
		Results:    make([]renderedName, 0, len(input.Identifiers)),
	}
	for _, id := range input.Identifiers {
		rendered, err := transform.RenderName(id, opts...)
		if err != nil {
			return errResult(err), renderNameOutput{}, nil
		}
		output.Results = append(output.Results, renderedName{Input: id, Output: rendered})
	}
	return nil, output, nil
}
