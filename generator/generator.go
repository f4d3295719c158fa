package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/fievar/fieverrors"
	"github.com/erraggy/fievar/internal/naming"
	"github.com/erraggy/fievar/transform"
)

// Severity indicates the severity level of a generation issue.
type Severity int

const (
	// SeverityError indicates a problem that invalidates the generated output.
	SeverityError Severity = iota
	// SeverityWarning indicates a suspicious input that generation worked around.
	SeverityWarning
	// SeverityInfo indicates informational messages about generation choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Issue represents a single generation issue.
type Issue struct {
	// Severity is the issue severity level
	Severity Severity
	// Type is the type being generated when the issue occurred
	Type string
	// Member is the field or variant involved, if any
	Member string
	// Message is a human-readable description
	Message string
}

// String formats the issue as "severity: Type.Member: message".
func (i Issue) String() string {
	loc := i.Type
	if i.Member != "" {
		loc += "." + i.Member
	}
	if loc != "" {
		return fmt.Sprintf("%s: %s: %s", i.Severity, loc, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// AccessorKind selects which members of a type feed its accessor.
type AccessorKind int

const (
	// KindFields collects the named fields of a struct type.
	KindFields AccessorKind = iota
	// KindVariants collects the constants declared with the type.
	KindVariants
)

// String returns the string representation of the accessor kind.
func (k AccessorKind) String() string {
	switch k {
	case KindFields:
		return "fields"
	case KindVariants:
		return "variants"
	default:
		return "unknown"
	}
}

// ParseKind parses a manifest/CLI kind value. The empty string defaults to
// fields.
func ParseKind(s string) (AccessorKind, error) {
	switch strings.ToLower(s) {
	case "", "fields":
		return KindFields, nil
	case "variants":
		return KindVariants, nil
	default:
		return 0, &fieverrors.ConfigError{
			Field:   "kind",
			Value:   s,
			Message: `must be "fields" or "variants"`,
		}
	}
}

// TypeSpec names one type to generate an accessor for.
type TypeSpec struct {
	// Name is the type name within the scanned package.
	Name string
	// Kind selects fields or variants collection.
	Kind AccessorKind
	// Accessor overrides the generated method name. When empty the method
	// is named Fields or Variants by kind. The value is normalized to an
	// exported Go identifier.
	Accessor string
}

// DefaultOutputFile is the generated file name when none is configured.
const DefaultOutputFile = "zz_generated_fievar.go"

// Generator handles accessor generation for one Go package.
type Generator struct {
	// Dir is the directory of the package to scan.
	// Default: "."
	Dir string

	// Types lists the types to generate accessors for.
	Types []TypeSpec

	// OutputFile is the name of the generated file (no path separators).
	// Default: DefaultOutputFile
	OutputFile string

	// StrictMode causes generation to fail when any warning is reported.
	StrictMode bool

	// IncludeInfo determines whether informational issues are reported.
	IncludeInfo bool
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{
		Dir:        ".",
		OutputFile: DefaultOutputFile,
	}
}

// GeneratedFile represents a single generated file.
type GeneratedFile struct {
	// Name is the file name (e.g. "zz_generated_fievar.go")
	Name string
	// Content is the formatted Go source
	Content []byte
}

// GenerateResult contains the results of an accessor generation run.
type GenerateResult struct {
	// Files contains the generated files
	Files []GeneratedFile
	// PackageName is the Go package name of the scanned package
	PackageName string
	// Issues contains all generation issues
	Issues []Issue
	// GeneratedTypes is the count of types that received an accessor
	GeneratedTypes int
	// GeneratedNames is the total count of rendered names
	GeneratedNames int
	// WarningCount is the number of warning issues
	WarningCount int
	// Success is true if generation completed without errors (and, in
	// strict mode, without warnings)
	Success bool
	// LoadTime is the time taken to load and scan the package
	LoadTime time.Duration
	// GenerateTime is the time taken to render names and emit code
	GenerateTime time.Duration
}

// HasWarnings returns true if there are any warning issues.
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found.
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Option configures a Generator for GenerateWithOptions.
type Option func(*Generator) error

// WithDir sets the directory of the package to scan.
func WithDir(dir string) Option {
	return func(g *Generator) error {
		g.Dir = dir
		return nil
	}
}

// WithType adds a type to generate an accessor for.
func WithType(name string, kind AccessorKind) Option {
	return func(g *Generator) error {
		g.Types = append(g.Types, TypeSpec{Name: name, Kind: kind})
		return nil
	}
}

// WithTypeSpec adds a fully specified type, including a custom accessor name.
func WithTypeSpec(spec TypeSpec) Option {
	return func(g *Generator) error {
		g.Types = append(g.Types, spec)
		return nil
	}
}

// WithOutputFile sets the generated file name.
func WithOutputFile(name string) Option {
	return func(g *Generator) error {
		g.OutputFile = name
		return nil
	}
}

// WithStrictMode causes generation to fail on any warning.
func WithStrictMode(enabled bool) Option {
	return func(g *Generator) error {
		g.StrictMode = enabled
		return nil
	}
}

// WithIncludeInfo includes informational issues in the result.
func WithIncludeInfo(enabled bool) Option {
	return func(g *Generator) error {
		g.IncludeInfo = enabled
		return nil
	}
}

// WithConfig applies a loaded manifest to the generator. Manifest values
// override defaults but not options applied after it.
func WithConfig(cfg *Config) Option {
	return func(g *Generator) error {
		return cfg.apply(g)
	}
}

// WithConfigFile loads a YAML manifest and applies it to the generator.
func WithConfigFile(path string) Option {
	return func(g *Generator) error {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		return cfg.apply(g)
	}
}

// GenerateWithOptions creates a Generator, applies the options in order,
// and runs generation.
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	g := New()
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g.Generate()
}

// Generate scans the configured package, renders every collected member
// name through the transform engine, and emits the generated file. The
// file is returned in the result; use WriteFiles to write it to disk.
func (g *Generator) Generate() (*GenerateResult, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	result := &GenerateResult{}

	loadStart := time.Now()
	pkgName, found, collected, err := g.load()
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(loadStart)
	result.PackageName = pkgName

	genStart := time.Now()
	accessors := make([]accessorData, 0, len(g.Types))
	for _, spec := range g.Types {
		if !found[spec.Name] {
			return nil, &fieverrors.GenerateError{
				Package: g.Dir,
				Type:    spec.Name,
				Message: "type not found in package " + pkgName,
			}
		}

		members := collected[spec.Name]
		names := make([]string, 0, len(members))
		for _, m := range members {
			if m.Skip {
				continue
			}
			var opts []transform.NameOption
			if m.HasOverride {
				opts = append(opts, transform.WithOverride(m.Override))
			}
			if m.HasExpr {
				opts = append(opts, transform.WithExpression(m.Expr))
			}
			name, err := transform.RenderName(m.Name, opts...)
			if err != nil {
				return nil, &fieverrors.GenerateError{
					Package: g.Dir,
					Type:    spec.Name,
					Member:  m.Name,
					Message: "invalid transform annotation",
					Cause:   err,
				}
			}
			names = append(names, name)
		}

		if len(names) == 0 {
			result.addIssue(Issue{
				Severity: SeverityWarning,
				Type:     spec.Name,
				Message:  fmt.Sprintf("no %s collected; accessor returns an empty slice", spec.Kind),
			})
		} else if g.IncludeInfo {
			result.Issues = append(result.Issues, Issue{
				Severity: SeverityInfo,
				Type:     spec.Name,
				Message:  fmt.Sprintf("rendered %d %s", len(names), spec.Kind),
			})
		}

		accessors = append(accessors, accessorData{
			Type:     spec.Name,
			FuncName: accessorName(spec),
			KindWord: kindWord(spec.Kind),
			Names:    names,
		})
		result.GeneratedTypes++
		result.GeneratedNames += len(names)
	}

	content, err := emit(pkgName, g.OutputFile, accessors)
	if err != nil {
		return nil, err
	}
	result.Files = []GeneratedFile{{Name: g.OutputFile, Content: content}}
	result.GenerateTime = time.Since(genStart)

	result.Success = true
	if g.StrictMode && result.WarningCount > 0 {
		result.Success = false
		return result, &fieverrors.GenerateError{
			Package: g.Dir,
			Message: fmt.Sprintf("strict mode: %d warning(s) reported", result.WarningCount),
		}
	}
	return result, nil
}

func (r *GenerateResult) addIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
	if issue.Severity == SeverityWarning {
		r.WarningCount++
	}
}

// validate checks the generator configuration before any loading happens.
func (g *Generator) validate() error {
	if len(g.Types) == 0 {
		return &fieverrors.ConfigError{
			Field:   "types",
			Message: "at least one type is required",
		}
	}
	seen := make(map[string]bool, len(g.Types))
	for _, spec := range g.Types {
		if !naming.IsValidIdent(spec.Name) {
			return &fieverrors.ConfigError{
				Field:   "types",
				Value:   spec.Name,
				Message: "not a valid Go type name",
			}
		}
		if seen[spec.Name] {
			return &fieverrors.ConfigError{
				Field:   "types",
				Value:   spec.Name,
				Message: "type listed more than once",
			}
		}
		seen[spec.Name] = true
	}
	if g.OutputFile == "" || filepath.Base(g.OutputFile) != g.OutputFile || !strings.HasSuffix(g.OutputFile, ".go") {
		return &fieverrors.ConfigError{
			Field:   "output",
			Value:   g.OutputFile,
			Message: "must be a bare .go file name",
		}
	}
	return nil
}

func kindWord(k AccessorKind) string {
	if k == KindVariants {
		return "variant"
	}
	return "field"
}
