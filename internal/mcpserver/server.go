// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes fievar's identifier transformation and accessor
// generation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fievar"
)

const serverInstructions = `fievar MCP server — splits identifiers into words, renders them through transformation expressions, and generates name accessor methods for Go types.

Expression language: up to three word rules (characters c=lower, C=upper, *=keep; one char applies uniformly, two chars split first/rest, three chars split first/middle/last), an optional numeral alignment (1__ left, __1 right, _1_ middle), and an optional separator after "|". Example: "c Cc|" renders camelCase, "c|_" renders snake_case.

Configuration: defaults are configurable via FIEVAR_* environment variables set in your MCP client config.

Key settings:
- FIEVAR_RENDER_LIMIT (default: 200) — max identifiers per render_name call
- FIEVAR_GENERATE_STRICT (default: false) — fail generate_accessors on warnings by default
- FIEVAR_GENERATE_INCLUDE_INFO (default: false) — include informational issues by default`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "fievar", Version: fievar.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_name",
		Description: "Render one or more identifiers through a transformation expression. Each identifier is split into words at case and letter/digit boundaries, cased per the expression's word rules, digit runs aligned, and the units joined with the expression's separator. An empty expression returns each identifier unchanged. With exactly one identifier, override replaces it verbatim before the expression applies. Batch size is capped by FIEVAR_RENDER_LIMIT (default 200).",
	}, handleRenderName)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split_identifier",
		Description: "Split an identifier into its words without rendering. Words break at lower-to-upper transitions, letter/digit boundaries, and non-alphanumeric separators (which are discarded). A trailing uppercase run before a lowercase letter splits before its last letter, so acronyms like HTTPResponse split as HTTP + Response. Each word is tagged alpha or digits.",
	}, handleSplitIdentifier)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_expression",
		Description: "Parse a transformation expression and return its structure: the word rules in positional order, the numeral alignment, and the separator. Use this to check an expression before applying it with render_name or embedding it in a fievar struct tag.",
	}, handleParseExpression)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_accessors",
		Description: "Generate name accessor methods for Go types in a package directory. For each requested type, collects its struct fields or associated constants, renders their names through any fievar tag annotations, and emits a generated .go file. Set write=true to write the file into the package directory; otherwise the content is returned inline. Strict mode and info reporting defaults are configurable via FIEVAR_GENERATE_STRICT and FIEVAR_GENERATE_INCLUDE_INFO env vars.",
	}, handleGenerateAccessors)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
