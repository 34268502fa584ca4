package envied

import (
	_ "embed"
	"strings"

	"github.com/aretw0/envied/internal/envfile"
	"github.com/aretw0/envied/pkg/env"
	"github.com/aretw0/envied/pkg/schema"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

const (
	// EnvGroups lists the groups to validate, separated by commas or spaces.
	EnvGroups = "ENVIED_GROUPS"
	// EnvAppEnv names the deployment environment, added as a group when
	// EnvGroups is unset.
	EnvAppEnv = "APP_ENV"
)

// Load reads the Envfile at path.
func Load(path string) (*schema.Schema, error) {
	return envfile.Load(path)
}

// Require loads the Envfile at path and validates the process environment
// for groups. It returns the typed values, or a *schema.ConfigurationError
// listing every missing or invalid variable.
func Require(path string, groups ...string) (map[string]any, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return s.Require(env.OS(), groups...)
}

// GroupsFromEnv picks the groups to validate: ENVIED_GROUPS when set,
// otherwise "default" plus the value of APP_ENV.
func GroupsFromEnv(p env.Provider) []string {
	if raw, ok := p.LookupEnv(EnvGroups); ok && strings.TrimSpace(raw) != "" {
		return splitGroups(raw)
	}
	groups := []string{schema.GroupDefault}
	if app, ok := p.LookupEnv(EnvAppEnv); ok {
		app = strings.TrimSpace(app)
		if app != "" && app != schema.GroupDefault {
			groups = append(groups, app)
		}
	}
	return groups
}

func splitGroups(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
