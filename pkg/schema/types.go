package schema

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Type defines the contract for coercing a raw environment value.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "integer").
	Name() string
	// Coerce converts a raw, non-empty value into its typed form.
	Coerce(raw string) (any, error)
}

// CoerceFunc converts a raw value into a typed value.
type CoerceFunc func(raw string) (any, error)

type funcType struct {
	name   string
	coerce CoerceFunc
}

func (t *funcType) Name() string { return t.name }

func (t *funcType) Coerce(raw string) (any, error) { return t.coerce(raw) }

// --- Built-in Types ---

// String keeps the raw value.
func String() Type {
	return &funcType{name: "string", coerce: func(raw string) (any, error) {
		return raw, nil
	}}
}

// Symbol accepts any non-blank value and returns it trimmed.
func Symbol() Type {
	return &funcType{name: "symbol", coerce: func(raw string) (any, error) {
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil, fmt.Errorf("blank symbol")
		}
		return s, nil
	}}
}

// Integer coerces to int64. Prefixed forms (0x, 0o, 0b) are accepted; a bare
// leading zero is decimal, so "010" is 10.
func Integer() Type {
	return &funcType{name: "integer", coerce: func(raw string) (any, error) {
		return cast.ToInt64E(trimLeadingZeros(strings.TrimSpace(raw)))
	}}
}

// Float coerces to float64.
func Float() Type {
	return &funcType{name: "float", coerce: func(raw string) (any, error) {
		return cast.ToFloat64E(strings.TrimSpace(raw))
	}}
}

// Boolean coerces to bool. Besides the strconv forms it accepts
// yes/no, y/n and on/off in any case.
func Boolean() Type {
	return &funcType{name: "boolean", coerce: func(raw string) (any, error) {
		s := strings.ToLower(strings.TrimSpace(raw))
		switch s {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
		return cast.ToBoolE(s)
	}}
}

// Duration coerces to time.Duration ("1m30s"). A bare integer is nanoseconds.
func Duration() Type {
	return &funcType{name: "duration", coerce: func(raw string) (any, error) {
		return cast.ToDurationE(strings.TrimSpace(raw))
	}}
}

// Date coerces a YYYY-MM-DD value to time.Time (UTC).
func Date() Type {
	return &funcType{name: "date", coerce: func(raw string) (any, error) {
		return time.Parse(time.DateOnly, strings.TrimSpace(raw))
	}}
}

// Time coerces any layout understood by cast (RFC3339 and friends) to time.Time.
func Time() Type {
	return &funcType{name: "time", coerce: func(raw string) (any, error) {
		return cast.ToTimeE(strings.TrimSpace(raw))
	}}
}

// Array splits a comma separated value into []string. "\," is a literal comma.
// Elements are trimmed and trailing empty elements are dropped.
func Array() Type {
	return &funcType{name: "array", coerce: func(raw string) (any, error) {
		parts := splitEscaped(raw, ',')
		for len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		return parts, nil
	}}
}

// Hash parses query-string syntax ("a=1&b=2") into map[string]string.
// When a key repeats, the last value wins.
func Hash() Type {
	return &funcType{name: "hash", coerce: func(raw string) (any, error) {
		q, err := url.ParseQuery(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		out := make(map[string]string, len(q))
		for k, vs := range q {
			out[k] = vs[len(vs)-1]
		}
		return out, nil
	}}
}

// URI parses the value into *url.URL and requires a scheme.
func URI() Type {
	return &funcType{name: "uri", coerce: func(raw string) (any, error) {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "" {
			return nil, fmt.Errorf("missing scheme")
		}
		return u, nil
	}}
}

// Enum accepts exactly one of values and returns it as a string.
func Enum(values ...string) Type {
	allowed := append([]string(nil), values...)
	return &funcType{
		name: fmt.Sprintf("enum(%s)", strings.Join(allowed, "|")),
		coerce: func(raw string) (any, error) {
			for _, v := range allowed {
				if raw == v {
					return v, nil
				}
			}
			return nil, fmt.Errorf("not one of %s", strings.Join(allowed, ", "))
		},
	}
}

// Custom wraps a user-defined coercion function.
func Custom(name string, coerce CoerceFunc) Type {
	return &funcType{name: name, coerce: coerce}
}

func trimLeadingZeros(s string) string {
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	for len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	return sign + s
}

func splitEscaped(s string, sep rune) []string {
	parts := []string{}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if r != sep {
				b.WriteRune('\\')
			}
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == sep:
			parts = append(parts, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteRune('\\')
	}
	parts = append(parts, strings.TrimSpace(b.String()))
	return parts
}
