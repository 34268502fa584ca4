// Package envfile reads and writes the YAML Envfile that declares a schema.
//
//	enable_defaults: true
//	variables:
//	  - name: PORT
//	    type: integer
//	    default: "3000"
//	groups:
//	  - name: production
//	    variables:
//	      - name: SECRET_KEY_BASE
package envfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/envied/pkg/schema"
)

// DefaultName is the file looked up when no path is given.
const DefaultName = "Envfile.yml"

type document struct {
	EnableDefaults bool       `yaml:"enable_defaults,omitempty"`
	Variables      []variable `yaml:"variables,omitempty"`
	Groups         []group    `yaml:"groups,omitempty"`
}

type variable struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type,omitempty"`
	Values  []string `yaml:"values,omitempty"`
	Default *string  `yaml:"default,omitempty"`
	Groups  []string `yaml:"groups,omitempty"`
}

type group struct {
	Name      string     `yaml:"name"`
	Variables []variable `yaml:"variables"`
}

// Load reads the Envfile at path using the default type registry.
func Load(path string) (*schema.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("envfile not found at %s", path)
		}
		return nil, fmt.Errorf("failed to open envfile: %w", err)
	}
	defer f.Close()

	s, err := Parse(f, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes an Envfile. Types are resolved through reg, or the default
// registry when reg is nil. Unknown keys are rejected.
func Parse(r io.Reader, reg *schema.Registry) (*schema.Schema, error) {
	if reg == nil {
		reg = schema.DefaultRegistry()
	}

	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode envfile: %w", err)
	}

	s := schema.New(schema.WithDefaults(doc.EnableDefaults))
	for _, v := range doc.Variables {
		if err := declare(s, reg, v, nil); err != nil {
			return nil, err
		}
	}
	for _, g := range doc.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("group without a name")
		}
		for _, v := range g.Variables {
			if err := declare(s, reg, v, []string{g.Name}); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func declare(s *schema.Schema, reg *schema.Registry, v variable, groups []string) error {
	typ, err := resolveType(reg, v)
	if err != nil {
		return fmt.Errorf("variable %s: %w", v.Name, err)
	}

	groups = append(groups, v.Groups...)
	if v.Default != nil {
		return s.DeclareDefault(v.Name, typ, *v.Default, groups...)
	}
	return s.Declare(v.Name, typ, groups...)
}

func resolveType(reg *schema.Registry, v variable) (schema.Type, error) {
	switch {
	case v.Type == "" && len(v.Values) > 0, v.Type == "enum":
		if len(v.Values) == 0 {
			return nil, fmt.Errorf("enum type needs values")
		}
		return schema.Enum(v.Values...), nil
	case v.Type == "":
		return schema.String(), nil
	}
	return reg.Lookup(v.Type)
}

// Write renders s as an Envfile. Every declaration is written as a top-level
// variable with explicit groups, so the output round-trips through Parse.
func Write(w io.Writer, s *schema.Schema) error {
	doc := document{EnableDefaults: s.DefaultsEnabled()}
	for _, d := range s.Declarations() {
		v := variable{Name: d.Name, Type: d.Type.Name()}
		if len(d.Groups) != 1 || d.Groups[0] != schema.GroupDefault {
			v.Groups = d.Groups
		}
		if d.HasDefault {
			def := d.Default
			v.Default = &def
		}
		doc.Variables = append(doc.Variables, v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode envfile: %w", err)
	}
	return enc.Close()
}
