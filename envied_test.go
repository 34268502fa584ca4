package envied_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/envied"
	"github.com/aretw0/envied/pkg/env"
	"github.com/aretw0/envied/pkg/schema"
)

const envfileYAML = `
variables:
  - name: ENVIED_TEST_PORT
    type: integer
groups:
  - name: production
    variables:
      - name: ENVIED_TEST_API_KEY
`

func writeEnvfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Envfile.yml")
	require.NoError(t, os.WriteFile(path, []byte(envfileYAML), 0644))
	return path
}

func TestRequire_EndToEnd(t *testing.T) {
	path := writeEnvfile(t)
	t.Setenv("ENVIED_TEST_PORT", "8080")

	values, err := envied.Require(path, "default")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ENVIED_TEST_PORT": int64(8080)}, values)

	_, err = envied.Require(path, "default", "production")
	var cfgErr *schema.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"ENVIED_TEST_API_KEY"}, cfgErr.Missing())
}

func TestRequire_MissingEnvfile(t *testing.T) {
	_, err := envied.Require(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestGroupsFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  env.Map
		want []string
	}{
		{"nothing set", env.Map{}, []string{"default"}},
		{"app env", env.Map{"APP_ENV": "production"}, []string{"default", "production"}},
		{"app env is default", env.Map{"APP_ENV": "default"}, []string{"default"}},
		{"explicit groups", env.Map{"ENVIED_GROUPS": "default, staging", "APP_ENV": "production"}, []string{"default", "staging"}},
		{"blank groups", env.Map{"ENVIED_GROUPS": "  ", "APP_ENV": "test"}, []string{"default", "test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envied.GroupsFromEnv(tt.env))
		})
	}
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, envied.Version)
}
