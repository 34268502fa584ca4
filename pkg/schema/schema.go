package schema

import (
	"fmt"
	"regexp"
)

const (
	// GroupDefault is the group of declarations that name none.
	GroupDefault = "default"
	// GroupAll selects every declaration regardless of its groups.
	GroupAll = "all"
)

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Declaration is a named, typed requirement on one environment variable.
type Declaration struct {
	Name       string
	Type       Type
	Groups     []string
	Default    string
	HasDefault bool
}

// InGroup reports whether the declaration belongs to group.
func (d Declaration) InGroup(group string) bool {
	for _, g := range d.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// Schema is an ordered set of declarations.
// A Schema is not safe for concurrent Declare calls.
type Schema struct {
	decls          []Declaration
	enableDefaults bool
}

// Option configures a Schema.
type Option func(*Schema)

// WithDefaults makes declared defaults stand in for unset variables.
func WithDefaults(enabled bool) Option {
	return func(s *Schema) {
		s.enableDefaults = enabled
	}
}

// New creates an empty schema.
func New(opts ...Option) *Schema {
	s := &Schema{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Declare registers a variable. Without groups it joins GroupDefault.
// Declaring a name again adds another declaration; it does not replace the
// earlier one.
func (s *Schema) Declare(name string, typ Type, groups ...string) error {
	return s.add(Declaration{Name: name, Type: typ, Groups: groups})
}

// DeclareDefault is Declare with a fallback raw value, used when defaults
// are enabled.
func (s *Schema) DeclareDefault(name string, typ Type, def string, groups ...string) error {
	return s.add(Declaration{Name: name, Type: typ, Groups: groups, Default: def, HasDefault: true})
}

func (s *Schema) add(d Declaration) error {
	if !validName.MatchString(d.Name) {
		return fmt.Errorf("invalid variable name %q", d.Name)
	}
	if d.Type == nil {
		return fmt.Errorf("variable %s: type is nil", d.Name)
	}
	if len(d.Groups) == 0 {
		d.Groups = []string{GroupDefault}
	} else {
		d.Groups = append([]string(nil), d.Groups...)
	}
	s.decls = append(s.decls, d)
	return nil
}

// EnableDefaults toggles whether declared defaults are applied.
func (s *Schema) EnableDefaults(enabled bool) {
	s.enableDefaults = enabled
}

// DefaultsEnabled reports whether declared defaults are applied.
func (s *Schema) DefaultsEnabled() bool {
	return s.enableDefaults
}

// Declarations returns a copy of the declarations in declaration order.
func (s *Schema) Declarations() []Declaration {
	out := make([]Declaration, len(s.decls))
	copy(out, s.decls)
	return out
}

// Len returns the number of declarations.
func (s *Schema) Len() int {
	return len(s.decls)
}

// Groups returns the distinct group labels in order of first use.
func (s *Schema) Groups() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range s.decls {
		for _, g := range d.Groups {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	return out
}

// Active returns the effective declarations for groups: those whose groups
// intersect the request, one per name. When a name is declared more than
// once, the last matching declaration wins, but the name keeps the position
// of its first match.
func (s *Schema) Active(groups ...string) []Declaration {
	groups = normalizeGroups(groups)
	all := false
	requested := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g == GroupAll {
			all = true
		}
		requested[g] = true
	}

	index := make(map[string]int)
	var out []Declaration
	for _, d := range s.decls {
		if !all && !intersects(d.Groups, requested) {
			continue
		}
		if i, ok := index[d.Name]; ok {
			out[i] = d
			continue
		}
		index[d.Name] = len(out)
		out = append(out, d)
	}
	return out
}

func normalizeGroups(groups []string) []string {
	if len(groups) == 0 {
		return []string{GroupDefault}
	}
	return groups
}

func intersects(groups []string, requested map[string]bool) bool {
	for _, g := range groups {
		if requested[g] {
			return true
		}
	}
	return false
}
