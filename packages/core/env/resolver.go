package env

import (
	"log/slog"
	"os"
	"regexp"
	"strings"
)

var variablePattern = regexp.MustCompile(`\{\{\s*\$([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Resolver expands {{$NAME}} references.
type Resolver struct {
	variables map[string]string
	lookupEnv func(string) (string, bool)
}

// NewResolver returns a resolver that prefers vars over the process environment.
func NewResolver(vars map[string]string) *Resolver {
	if vars == nil {
		vars = map[string]string{}
	}
	return &Resolver{
		variables: vars,
		lookupEnv: os.LookupEnv,
	}
}

func (r *Resolver) lookup(name string) (string, bool) {
	if v, ok := r.variables[name]; ok {
		return v, true
	}
	return r.lookupEnv(name)
}

// Resolve replaces every known reference in input. Unknown references are
// left as written and logged.
func (r *Resolver) Resolve(input string) string {
	if !strings.Contains(input, "{{") {
		return input
	}
	return variablePattern.ReplaceAllStringFunc(input, func(match string) string {
		name := variablePattern.FindStringSubmatch(match)[1]
		if val, ok := r.lookup(name); ok {
			return val
		}
		slog.Warn("unresolved environment variable", "name", name)
		return match
	})
}

// ResolveMap returns a copy of m with every value resolved.
func (r *Resolver) ResolveMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = r.Resolve(v)
	}
	return out
}
