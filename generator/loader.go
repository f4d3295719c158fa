package generator

import (
	"go/ast"
	goparser "go/parser"
	"go/token"

	"golang.org/x/tools/go/packages"

	"github.com/erraggy/fievar/fieverrors"
)

// member is one collected field or variant together with its annotation.
type member struct {
	// Name is the declared Go identifier
	Name string
	// Override replaces Name before rendering, when HasOverride is set
	Override    string
	HasOverride bool
	// Expr is the transformation expression, when HasExpr is set
	Expr    string
	HasExpr bool
	// Skip excludes the member from the accessor
	Skip bool
}

// load loads the target package at syntax level and collects the members
// of every requested type. found records which requested type names were
// declared in the package, so a present-but-empty type can be told apart
// from a missing one.
func (g *Generator) load() (pkgName string, found map[string]bool, collected map[string][]member, err error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  g.Dir,
		// Accessor generation only needs declarations and comments; a
		// custom ParseFile keeps comments without pulling in type checking
		// of the package's dependencies.
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			return goparser.ParseFile(fset, filename, src, goparser.ParseComments)
		},
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", nil, nil, &fieverrors.GenerateError{
			Package: g.Dir,
			Message: "cannot load package",
			Cause:   err,
		}
	}
	if len(pkgs) == 0 {
		return "", nil, nil, &fieverrors.GenerateError{
			Package: g.Dir,
			Message: "no package found",
		}
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return "", nil, nil, &fieverrors.GenerateError{
			Package: g.Dir,
			Message: "package has errors: " + pkg.Errors[0].Msg,
		}
	}

	wanted := make(map[string]AccessorKind, len(g.Types))
	for _, spec := range g.Types {
		wanted[spec.Name] = spec.Kind
	}

	found = make(map[string]bool, len(wanted))
	collected = make(map[string][]member)
	for _, f := range pkg.Syntax {
		scanFile(f, wanted, found, collected)
	}
	return pkg.Name, found, collected, nil
}

// scanFile walks one file's declarations and collects members for the
// wanted types: named struct fields for KindFields, const declarations for
// KindVariants.
func scanFile(f *ast.File, wanted map[string]AccessorKind, found map[string]bool, out map[string][]member) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		switch gd.Tok {
		case token.TYPE:
			for _, s := range gd.Specs {
				ts, ok := s.(*ast.TypeSpec)
				if !ok {
					continue
				}
				kind, want := wanted[ts.Name.Name]
				if !want {
					continue
				}
				found[ts.Name.Name] = true
				if kind != KindFields {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}
				collectFields(ts.Name.Name, st, out)
			}
		case token.CONST:
			collectVariants(gd, wanted, out)
		}
	}
}

// collectFields appends one member per named field of a struct type.
// Embedded fields have no name of their own and are not collected.
func collectFields(typeName string, st *ast.StructType, out map[string][]member) {
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		ann, _ := parseFieldTag(field.Tag)
		for _, name := range field.Names {
			out[typeName] = append(out[typeName], memberFrom(name.Name, ann))
		}
	}
}

// collectVariants appends one member per constant declared with a wanted
// type. Within a const block, specs without an explicit type inherit the
// most recent one, which covers the usual iota pattern.
func collectVariants(gd *ast.GenDecl, wanted map[string]AccessorKind, out map[string][]member) {
	curType := ""
	for _, s := range gd.Specs {
		vs, ok := s.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if vs.Type != nil {
			curType = ""
			if id, ok := vs.Type.(*ast.Ident); ok {
				curType = id.Name
			}
		}
		if kind, want := wanted[curType]; !want || kind != KindVariants {
			continue
		}
		ann, _ := parseCommentAnnotation(vs.Comment, vs.Doc)
		for _, name := range vs.Names {
			if name.Name == "_" {
				continue
			}
			out[curType] = append(out[curType], memberFrom(name.Name, ann))
		}
	}
}

func memberFrom(name string, ann annotation) member {
	return member{
		Name:        name,
		Override:    ann.Name,
		HasOverride: ann.HasName,
		Expr:        ann.Expr,
		HasExpr:     ann.HasExpr,
		Skip:        ann.Skip,
	}
}
