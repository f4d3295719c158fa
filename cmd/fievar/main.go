package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/erraggy/fievar"
	"github.com/erraggy/fievar/generator"
	"github.com/erraggy/fievar/internal/mcpserver"
	"github.com/erraggy/fievar/transform"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("fievar v%s\n", fievar.Version())
	case "help", "-h", "--help":
		printUsage()
	case "render":
		if err := handleRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "split":
		if err := handleSplit(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// renderFlags contains flags for the render command
type renderFlags struct {
	expression string
	override   string
	verbose    bool
}

func setupRenderFlags() (*flag.FlagSet, *renderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &renderFlags{}

	fs.StringVar(&flags.expression, "e", "", "transformation expression")
	fs.StringVar(&flags.expression, "expr", "", "transformation expression")
	fs.StringVar(&flags.override, "override", "", "replacement identifier applied before the expression (single identifier only)")
	fs.BoolVar(&flags.verbose, "verbose", false, "print input and output for each identifier")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: fievar render [flags] <identifier...>\n\n")
		_, _ = fmt.Fprintf(output, "Render identifiers through a transformation expression.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExpression Language:\n")
		_, _ = fmt.Fprintf(output, "  Up to three word rules, each 1-3 of the characters c (lower),\n")
		_, _ = fmt.Fprintf(output, "  C (upper), and * (keep). One rule applies to every word; two split\n")
		_, _ = fmt.Fprintf(output, "  first/rest; three split first/middle/last. The same positional logic\n")
		_, _ = fmt.Fprintf(output, "  applies within each word's characters.\n")
		_, _ = fmt.Fprintf(output, "  An optional alignment (1__ left, __1 right, _1_ middle) controls how\n")
		_, _ = fmt.Fprintf(output, "  digit runs attach to neighboring words.\n")
		_, _ = fmt.Fprintf(output, "  Everything after '|' is the separator, verbatim.\n")
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  fievar render -e 'c Cc|' AccessToken        # accessToken\n")
		_, _ = fmt.Fprintf(output, "  fievar render -e 'c|_' AccessToken          # access_token\n")
		_, _ = fmt.Fprintf(output, "  fievar render -e 'C|_' getHTTPResponse      # GET_HTTP_RESPONSE\n")
		_, _ = fmt.Fprintf(output, "  fievar render -e 'Cc 1__|-' Size2XL         # Size2-Xl\n")
	}

	return fs, flags
}

func handleRender(args []string) error {
	fs, flags := setupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("render command requires at least one identifier")
	}
	if flags.override != "" && fs.NArg() != 1 {
		return fmt.Errorf("--override requires exactly one identifier")
	}

	var opts []transform.NameOption
	if flags.override != "" {
		opts = append(opts, transform.WithOverride(flags.override))
	}
	if flags.expression != "" {
		opts = append(opts, transform.WithExpression(flags.expression))
	}

	for _, id := range fs.Args() {
		rendered, err := transform.RenderName(id, opts...)
		if err != nil {
			return err
		}
		if flags.verbose {
			fmt.Printf("%s -> %s\n", id, rendered)
		} else {
			fmt.Println(rendered)
		}
	}
	return nil
}

func setupSplitFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: fievar split <identifier>\n\n")
		_, _ = fmt.Fprintf(output, "Split an identifier into its words without rendering.\n\n")
		_, _ = fmt.Fprintf(output, "Words break at lower-to-upper transitions, letter/digit boundaries,\n")
		_, _ = fmt.Fprintf(output, "and non-alphanumeric separators (which are discarded).\n")
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  fievar split getHTTPResponse2\n")
		_, _ = fmt.Fprintf(output, "  fievar split refresh_token\n")
	}

	return fs
}

func handleSplit(args []string) error {
	fs := setupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("split command requires exactly one identifier")
	}

	words := transform.Split(fs.Arg(0))
	for _, w := range words {
		fmt.Printf("%s\t%s\n", w.Text, w.Kind)
	}
	fmt.Printf("%d word(s)\n", len(words))
	return nil
}

// typeList is a repeatable -t flag collecting NAME[:KIND[:ACCESSOR]] values.
type typeList []string

func (t *typeList) String() string { return strings.Join(*t, ",") }

func (t *typeList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

// parseTypeValue parses one NAME[:KIND[:ACCESSOR]] flag value.
func parseTypeValue(v string) (generator.TypeSpec, error) {
	parts := strings.SplitN(v, ":", 3)
	kind, err := generator.ParseKind(kindPart(parts))
	if err != nil {
		return generator.TypeSpec{}, err
	}
	spec := generator.TypeSpec{Name: parts[0], Kind: kind}
	if len(parts) == 3 {
		spec.Accessor = parts[2]
	}
	return spec, nil
}

func kindPart(parts []string) string {
	if len(parts) > 1 {
		return parts[1]
	}
	return ""
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	dir         string
	types       typeList
	config      string
	output      string
	strict      bool
	includeInfo bool
	dryRun      bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.dir, "d", ".", "package directory to scan")
	fs.StringVar(&flags.dir, "dir", ".", "package directory to scan")
	fs.Var(&flags.types, "t", "type to generate, as NAME[:KIND[:ACCESSOR]] (repeatable; KIND is fields or variants)")
	fs.Var(&flags.types, "type", "type to generate, as NAME[:KIND[:ACCESSOR]] (repeatable)")
	fs.StringVar(&flags.config, "c", "", "YAML manifest path")
	fs.StringVar(&flags.config, "config", "", "YAML manifest path")
	fs.StringVar(&flags.output, "o", "", "generated file name (default: zz_generated_fievar.go)")
	fs.StringVar(&flags.output, "output", "", "generated file name (default: zz_generated_fievar.go)")
	fs.BoolVar(&flags.strict, "strict", false, "fail on any warning")
	fs.BoolVar(&flags.includeInfo, "include-info", false, "report informational issues")
	fs.BoolVar(&flags.dryRun, "dry-run", false, "print the generated file to stdout instead of writing it")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: fievar generate [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Generate name accessor methods for Go types.\n\n")
		_, _ = fmt.Fprintf(output, "For each requested type, collects its struct fields or associated\n")
		_, _ = fmt.Fprintf(output, "constants, renders their names through any fievar tag annotations,\n")
		_, _ = fmt.Fprintf(output, "and writes a generated .go file into the package directory.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nAnnotations:\n")
		_, _ = fmt.Fprintf(output, "  Struct fields:  `fievar:\"[name][,trans=EXPR]\"`  (\"-\" skips the field)\n")
		_, _ = fmt.Fprintf(output, "  Constants:      // fievar:\"[name][,trans=EXPR]\"  trailing comment\n")
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  fievar generate -t Token\n")
		_, _ = fmt.Fprintf(output, "  fievar generate -d ./models -t Token:fields -t Color:variants:colorNames\n")
		_, _ = fmt.Fprintf(output, "  fievar generate -c fievar.yaml\n")
		_, _ = fmt.Fprintf(output, "  fievar generate -t Token --dry-run\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command takes no positional arguments")
	}
	if flags.config == "" && len(flags.types) == 0 {
		fs.Usage()
		return fmt.Errorf("at least one -t type or a -c manifest is required")
	}

	var opts []generator.Option
	if flags.config != "" {
		opts = append(opts, generator.WithConfigFile(flags.config))
	}
	if flags.dir != "." || flags.config == "" {
		opts = append(opts, generator.WithDir(flags.dir))
	}
	for _, v := range flags.types {
		spec, err := parseTypeValue(v)
		if err != nil {
			return err
		}
		opts = append(opts, generator.WithTypeSpec(spec))
	}
	if flags.output != "" {
		opts = append(opts, generator.WithOutputFile(flags.output))
	}
	if flags.strict {
		opts = append(opts, generator.WithStrictMode(true))
	}
	if flags.includeInfo {
		opts = append(opts, generator.WithIncludeInfo(true))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		if result != nil {
			printIssues(result)
		}
		return err
	}

	if flags.dryRun {
		for _, f := range result.Files {
			_, _ = os.Stdout.Write(f.Content)
		}
		printIssues(result)
		return nil
	}

	if err := result.WriteFiles(flags.dir); err != nil {
		return fmt.Errorf("writing generated file: %w", err)
	}

	fmt.Printf("fievar v%s\n", fievar.Version())
	fmt.Printf("Package: %s\n", result.PackageName)
	for _, f := range result.Files {
		fmt.Printf("Wrote: %s (%d bytes)\n", f.Name, len(f.Content))
	}
	fmt.Printf("Types: %d, names: %d\n", result.GeneratedTypes, result.GeneratedNames)
	printIssues(result)
	return nil
}

func printIssues(result *generator.GenerateResult) {
	for _, issue := range result.Issues {
		fmt.Fprintf(os.Stderr, "  %s\n", issue)
	}
}

func setupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: fievar mcp\n\n")
		_, _ = fmt.Fprintf(output, "Run the fievar MCP server over stdio.\n\n")
		_, _ = fmt.Fprintf(output, "Exposes render_name, split_identifier, parse_expression, and\n")
		_, _ = fmt.Fprintf(output, "generate_accessors as MCP tools. Defaults are configurable via\n")
		_, _ = fmt.Fprintf(output, "FIEVAR_* environment variables; run until the client disconnects.\n")
	}

	return fs
}

func handleMCP(args []string) error {
	fs := setupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// commandNames lists every recognised top-level command, for suggestions.
var commandNames = []string{"render", "split", "generate", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`fievar - identifier transformation and accessor generation

Usage:
  fievar <command> [options]

Commands:
  render      Render identifiers through a transformation expression
  split       Split an identifier into its words
  generate    Generate name accessor methods for Go types
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  fievar render -e 'c Cc|' AccessToken
  fievar render -e 'c|_' getHTTPResponse
  fievar split Size2XL
  fievar generate -d ./models -t Token -t Color:variants
  fievar generate -c fievar.yaml

Run 'fievar <command> --help' for more information on a command.`)
}
