package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps type names to Types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Type
}

// NewRegistry creates a registry with the built-in types registered.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]Type)}
	for _, t := range []Type{
		String(), Symbol(), Integer(), Float(), Boolean(), Duration(),
		Date(), Time(), Array(), Hash(), URI(),
	} {
		r.types[t.Name()] = t
	}
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by ParseType.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a type under name.
// If a type with the same name exists, it is overwritten.
func (r *Registry) Register(name string, t Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = t
}

// Lookup resolves a type name. Besides registered names it understands the
// inline enum syntax "enum(a|b|c)".
func (r *Registry) Lookup(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if values, ok := parseEnum(name); ok {
		return Enum(values...), nil
	}

	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported type: %s", name)
	}
	return t, nil
}

// Names lists registered type names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseType resolves name against the default registry.
func ParseType(name string) (Type, error) {
	return defaultRegistry.Lookup(name)
}

func parseEnum(name string) ([]string, bool) {
	inner, ok := strings.CutPrefix(name, "enum(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return nil, false
	}
	inner = strings.TrimSuffix(inner, ")")
	if inner == "" {
		return nil, false
	}
	return strings.Split(inner, "|"), true
}
