package schema

import (
	"fmt"
	"net/url"
	"reflect"
	"testing"
	"time"
)

func TestBuiltinTypes(t *testing.T) {
	tests := []struct {
		typ     Type
		raw     string
		want    any
		wantErr bool
	}{
		{String(), "hello", "hello", false},
		{String(), " spaced ", " spaced ", false},
		{Symbol(), " prod ", "prod", false},
		{Symbol(), "   ", nil, true},
		{Integer(), "42", int64(42), false},
		{Integer(), " 7 ", int64(7), false},
		{Integer(), "0x10", int64(16), false},
		{Integer(), "-3", int64(-3), false},
		{Integer(), "abc", nil, true},
		{Integer(), "4.5", nil, true},
		{Integer(), "010", int64(10), false},
		{Integer(), "08", int64(8), false},
		{Integer(), "-007", int64(-7), false},
		{Integer(), "0", int64(0), false},
		{Integer(), "0o17", int64(15), false},
		{Float(), "3.14", 3.14, false},
		{Float(), "2", float64(2), false},
		{Float(), "pi", nil, true},
		{Boolean(), "true", true, false},
		{Boolean(), "TRUE", true, false},
		{Boolean(), "1", true, false},
		{Boolean(), "Yes", true, false},
		{Boolean(), "on", true, false},
		{Boolean(), "f", false, false},
		{Boolean(), "no", false, false},
		{Boolean(), "off", false, false},
		{Boolean(), "maybe", nil, true},
		{Duration(), "1m30s", 90 * time.Second, false},
		{Duration(), "abc", nil, true},
		{Date(), "2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{Date(), "2024-13-01", nil, true},
		{Time(), "2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), false},
		{Time(), "not a time", nil, true},
		{Array(), "a, b\\,c,d", []string{"a", "b,c", "d"}, false},
		{Array(), "single", []string{"single"}, false},
		{Array(), "a,b,", []string{"a", "b"}, false},
		{Array(), "a,,b", []string{"a", "", "b"}, false},
		{Hash(), "a=1&b=2&a=3", map[string]string{"a": "3", "b": "2"}, false},
		{Hash(), "a=%zz", nil, true},
		{URI(), "localhost", nil, true},
		{Enum("debug", "info"), "info", "info", false},
		{Enum("debug", "info"), "warn", nil, true},
	}

	for _, tt := range tests {
		got, err := tt.typ.Coerce(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s.Coerce(%q) error = %v, wantErr %v", tt.typ.Name(), tt.raw, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if tm, ok := got.(time.Time); ok {
			if !tm.Equal(tt.want.(time.Time)) {
				t.Errorf("%s.Coerce(%q) = %v, want %v", tt.typ.Name(), tt.raw, tm, tt.want)
			}
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s.Coerce(%q) = %#v, want %#v", tt.typ.Name(), tt.raw, got, tt.want)
		}
	}
}

func TestURIType(t *testing.T) {
	got, err := URI().Coerce("postgres://user@db:5432/app")
	if err != nil {
		t.Fatalf("Coerce() error = %v", err)
	}
	u, ok := got.(*url.URL)
	if !ok {
		t.Fatalf("Coerce() returned %T, want *url.URL", got)
	}
	if u.Scheme != "postgres" || u.Host != "db:5432" {
		t.Errorf("Coerce() = %v", u)
	}
}

func TestTypeNames(t *testing.T) {
	tests := map[string]Type{
		"string":          String(),
		"symbol":          Symbol(),
		"integer":         Integer(),
		"float":           Float(),
		"boolean":         Boolean(),
		"duration":        Duration(),
		"date":            Date(),
		"time":            Time(),
		"array":           Array(),
		"hash":            Hash(),
		"uri":             URI(),
		"enum(a|b)":       Enum("a", "b"),
		"positive_number": Custom("positive_number", nil),
	}
	for want, typ := range tests {
		if typ.Name() != want {
			t.Errorf("Name() = %q, want %q", typ.Name(), want)
		}
	}
}

func TestCustomType(t *testing.T) {
	even := Custom("even", func(raw string) (any, error) {
		var n int
		if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
			return nil, err
		}
		if n%2 != 0 {
			return nil, fmt.Errorf("not even")
		}
		return n, nil
	})

	if v, err := even.Coerce("4"); err != nil || v != 4 {
		t.Errorf("Coerce(4) = %v, %v", v, err)
	}
	if _, err := even.Coerce("3"); err == nil {
		t.Error("Coerce(3) should fail")
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		wantErr  bool
		wantName string
	}{
		{"string", false, "string"},
		{"integer", false, "integer"},
		{" boolean ", false, "boolean"},
		{"enum(dev|prod)", false, "enum(dev|prod)"},
		{"enum()", true, ""},
		{"int", true, ""},
		{"invalid", true, ""},
	}

	for _, tt := range tests {
		typ, err := ParseType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && typ.Name() != tt.wantName {
			t.Errorf("ParseType(%q) Name() = %q, want %q", tt.input, typ.Name(), tt.wantName)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("port"); err == nil {
		t.Fatal("Lookup(port) should fail before registration")
	}

	r.Register("port", Custom("port", func(raw string) (any, error) { return raw, nil }))
	typ, err := r.Lookup("port")
	if err != nil {
		t.Fatalf("Lookup(port) error = %v", err)
	}
	if typ.Name() != "port" {
		t.Errorf("Name() = %q, want port", typ.Name())
	}

	// Registration on a private registry does not leak into the default one.
	if _, err := ParseType("port"); err == nil {
		t.Error("ParseType(port) should fail on the default registry")
	}

	names := r.Names()
	if len(names) != 12 || names[0] != "array" {
		t.Errorf("Names() = %v", names)
	}
}
