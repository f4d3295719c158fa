package transform

// NameOption configures a single RenderName call.
type NameOption func(*nameConfig)

type nameConfig struct {
	override    string
	hasOverride bool
	expr        string
	hasExpr     bool
}

// WithOverride replaces the raw identifier with name. Without an
// expression the override is returned verbatim; with an expression the
// pipeline runs over the override instead of the raw identifier.
func WithOverride(name string) NameOption {
	return func(cfg *nameConfig) {
		cfg.override = name
		cfg.hasOverride = true
	}
}

// WithExpression sets the transformation expression to apply.
func WithExpression(expr string) NameOption {
	return func(cfg *nameConfig) {
		cfg.expr = expr
		cfg.hasExpr = true
	}
}

// RenderName renders a field or variant name.
//
// With no expression the raw name (or its override) is returned verbatim:
// no splitting, no case change. With an expression the full pipeline runs
// and a malformed expression fails fast with the parse error unchanged,
// never partial output.
func RenderName(name string, opts ...NameOption) (string, error) {
	var cfg nameConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	target := name
	if cfg.hasOverride {
		target = cfg.override
	}
	if !cfg.hasExpr {
		return target, nil
	}

	spec, err := Parse(cfg.expr)
	if err != nil {
		return "", err
	}
	return Apply(spec, target), nil
}

// Apply runs split, render, and join over identifier with an already
// parsed spec. Callers applying one expression to many identifiers should
// Parse once and use Apply per identifier.
func Apply(spec *Spec, identifier string) string {
	return Join(Render(Split(identifier), spec), spec.Separator)
}
