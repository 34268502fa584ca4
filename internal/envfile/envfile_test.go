package envfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/envied/internal/envfile"
	"github.com/aretw0/envied/pkg/env"
	"github.com/aretw0/envied/pkg/schema"
)

const sample = `
enable_defaults: true
variables:
  - name: PORT
    type: integer
    default: "3000"
  - name: DEBUG
    type: boolean
    groups: [development]
  - name: APP_NAME
groups:
  - name: production
    variables:
      - name: API_KEY
      - name: LOG_LEVEL
        type: enum
        values: [warn, error]
`

func TestParse(t *testing.T) {
	s, err := envfile.Parse(strings.NewReader(sample), nil)
	require.NoError(t, err)

	decls := s.Declarations()
	require.Len(t, decls, 5)
	assert.True(t, s.DefaultsEnabled())

	assert.Equal(t, "PORT", decls[0].Name)
	assert.Equal(t, "integer", decls[0].Type.Name())
	assert.True(t, decls[0].HasDefault)
	assert.Equal(t, "3000", decls[0].Default)
	assert.Equal(t, []string{"default"}, decls[0].Groups)

	assert.Equal(t, []string{"development"}, decls[1].Groups)
	assert.Equal(t, "string", decls[2].Type.Name())
	assert.Equal(t, []string{"production"}, decls[3].Groups)
	assert.Equal(t, "enum(warn|error)", decls[4].Type.Name())

	values, err := s.Require(env.Map{"APP_NAME": "shop"})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), values["PORT"])
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown type":   "variables:\n  - name: X\n    type: money\n",
		"enum no values": "variables:\n  - name: X\n    type: enum\n",
		"bad name":       "variables:\n  - name: 9LIVES\n",
		"unknown key":    "variables:\n  - name: X\n    required: true\n",
		"unnamed group":  "groups:\n  - variables:\n      - name: X\n",
		"not yaml":       "variables: [",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := envfile.Parse(strings.NewReader(input), nil)
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	s, err := envfile.Parse(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestParse_CustomRegistry(t *testing.T) {
	reg := schema.NewRegistry()
	reg.Register("port", schema.Custom("port", func(raw string) (any, error) { return raw, nil }))

	s, err := envfile.Parse(strings.NewReader("variables:\n  - name: P\n    type: port\n"), reg)
	require.NoError(t, err)
	assert.Equal(t, "port", s.Declarations()[0].Type.Name())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, envfile.DefaultName)

	_, err := envfile.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))
	s, err := envfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
}

func TestWrite_RoundTrip(t *testing.T) {
	orig, err := envfile.Parse(strings.NewReader(sample), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, envfile.Write(&buf, orig))

	again, err := envfile.Parse(&buf, nil)
	require.NoError(t, err)
	require.Equal(t, orig.Len(), again.Len())
	assert.Equal(t, orig.DefaultsEnabled(), again.DefaultsEnabled())
	for i, d := range orig.Declarations() {
		got := again.Declarations()[i]
		assert.Equal(t, d.Name, got.Name)
		assert.Equal(t, d.Type.Name(), got.Type.Name())
		assert.Equal(t, d.Groups, got.Groups)
		assert.Equal(t, d.Default, got.Default)
		assert.Equal(t, d.HasDefault, got.HasDefault)
	}
}

func TestCreateScaffold(t *testing.T) {
	path := filepath.Join(t.TempDir(), envfile.DefaultName)

	require.NoError(t, envfile.CreateScaffold(path, false))
	err := envfile.CreateScaffold(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, envfile.CreateScaffold(path, true))

	s, err := envfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "production"}, s.Groups())
}
