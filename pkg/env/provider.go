package env

import (
	"os"
	"sort"
	"strings"
)

// Provider looks up environment variables by name.
type Provider interface {
	LookupEnv(key string) (string, bool)
}

type osProvider struct{}

func (osProvider) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// OS returns a Provider backed by the process environment.
func OS() Provider {
	return osProvider{}
}

// Map is an immutable-by-convention snapshot of variables.
type Map map[string]string

// LookupEnv implements Provider.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the variable names in lexical order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot builds a Map from KEY=VALUE pairs as returned by os.Environ.
// Entries without '=' are ignored. Later duplicates win.
func Snapshot(environ []string) Map {
	m := make(Map, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return m
}
