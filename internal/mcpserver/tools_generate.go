package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fievar/generator"
)

type generateTypeInput struct {
	Name     string `json:"name"               jsonschema:"The type name within the package"`
	Kind     string `json:"kind,omitempty"     jsonschema:"fields or variants (default: fields)"`
	Accessor string `json:"accessor,omitempty" jsonschema:"Custom accessor method name"`
}

type generateAccessorsInput struct {
	Dir    string              `json:"dir"              jsonschema:"Package directory to scan"`
	Types  []generateTypeInput `json:"types"            jsonschema:"Types to generate accessors for"`
	Output string              `json:"output,omitempty" jsonschema:"Generated file name (default: zz_generated_fievar.go)"`
	Strict *bool               `json:"strict,omitempty" jsonschema:"Fail on warnings; default from FIEVAR_GENERATE_STRICT"`
	Write  bool                `json:"write,omitempty"  jsonschema:"Write the generated file into the package directory instead of returning it inline"`
}

type generateAccessorsOutput struct {
	Success        bool     `json:"success"`
	PackageName    string   `json:"package_name"`
	FileName       string   `json:"file_name"`
	Content        string   `json:"content,omitempty"`
	GeneratedTypes int      `json:"generated_types"`
	GeneratedNames int      `json:"generated_names"`
	WarningCount   int      `json:"warning_count"`
	Issues         []string `json:"issues,omitempty"`
}

func handleGenerateAccessors(_ context.Context, _ *mcp.CallToolRequest, input generateAccessorsInput) (*mcp.CallToolResult, generateAccessorsOutput, error) {
	if input.Dir == "" {
		return errResult(fmt.Errorf("dir is required")), generateAccessorsOutput{}, nil
	}
	if len(input.Types) == 0 {
		return errResult(fmt.Errorf("at least one type is required")), generateAccessorsOutput{}, nil
	}

	strict := cfg.GenerateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	opts := []generator.Option{
		generator.WithDir(input.Dir),
		generator.WithStrictMode(strict),
		generator.WithIncludeInfo(cfg.GenerateIncludeInfo),
	}
	if input.Output != "" {
		opts = append(opts, generator.WithOutputFile(input.Output))
	}
	for _, t := range input.Types {
		kind, err := generator.ParseKind(t.Kind)
		if err != nil {
			return errResult(err), generateAccessorsOutput{}, nil
		}
		opts = append(opts, generator.WithTypeSpec(generator.TypeSpec{
			Name:     t.Name,
			Kind:     kind,
			Accessor: t.Accessor,
		}))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateAccessorsOutput{}, nil
	}

	if input.Write {
		if err := result.WriteFiles(input.Dir); err != nil {
			return errResult(fmt.Errorf("failed to write generated file: %w", err)), generateAccessorsOutput{}, nil
		}
	}

	output := generateAccessorsOutput{
		Success:        result.Success,
		PackageName:    result.PackageName,
		GeneratedTypes: result.GeneratedTypes,
		GeneratedNames: result.GeneratedNames,
		WarningCount:   result.WarningCount,
	}
	if len(result.Files) > 0 {
		output.FileName = result.Files[0].Name
		if !input.Write {
			output.Content = string(result.Files[0].Content)
		}
	}
	output.Issues = makeSlice[string](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}
	return nil, output, nil
}
