package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fievar/transform"
)

type splitIdentifierInput struct {
	Identifier string `json:"identifier" jsonschema:"The identifier to split into words"`
}

type splitWord struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

type splitIdentifierOutput struct {
	Identifier string      `json:"identifier"`
	WordCount  int         `json:"word_count"`
	Words      []splitWord `json:"words,omitempty"`
}

func handleSplitIdentifier(_ context.Context, _ *mcp.CallToolRequest, input splitIdentifierInput) (*mcp.CallToolResult, splitIdentifierOutput, error) {
	if input.Identifier == "" {
		return errResult(fmt.Errorf("identifier is required")), splitIdentifierOutput{}, nil
	}

	words := transform.Split(input.Identifier)
	output := splitIdentifierOutput{
		Identifier: input.Identifier,
		WordCount:  len(words),
		Words:      makeSlice[splitWord](len(words)),
	}
	for _, w := range words {
		output.Words = append(output.Words, splitWord{Text: w.Text, Kind: w.Kind.String()})
	}
	return nil, output, nil
}
