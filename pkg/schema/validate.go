package schema

import (
	"github.com/aretw0/envied/pkg/env"
)

// Result is the outcome of one validation run. It is built fresh by Validate
// and must be treated as read-only.
type Result struct {
	Groups []string         // Requested groups
	Total  int              // Number of effective declarations checked
	Values map[string]any   // Typed values of the variables that passed
	Errors map[string]error // *MissingError or *InvalidError per failing variable
	names  []string
}

// Names returns every checked variable in declaration order.
func (r *Result) Names() []string {
	return append([]string(nil), r.names...)
}

// OK reports whether every declaration passed.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Failures returns the errors in declaration order.
func (r *Result) Failures() []error {
	var errs []error
	for _, name := range r.names {
		if err, ok := r.Errors[name]; ok {
			errs = append(errs, err)
		}
	}
	return errs
}

// Err returns nil when the run passed, otherwise a *ConfigurationError.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ConfigurationError{
		Groups: append([]string(nil), r.Groups...),
		Errors: r.Failures(),
	}
}

// Validate checks the environment against every declaration active for
// groups. With no groups, GroupDefault is used; GroupAll selects everything.
// It never mutates the environment and never returns an error of its own:
// failures are collected in the Result.
func (s *Schema) Validate(e env.Provider, groups ...string) *Result {
	groups = normalizeGroups(groups)
	active := s.Active(groups...)

	res := &Result{
		Groups: append([]string(nil), groups...),
		Total:  len(active),
		Values: make(map[string]any, len(active)),
		Errors: make(map[string]error),
		names:  make([]string, 0, len(active)),
	}

	for _, d := range active {
		res.names = append(res.names, d.Name)

		raw, ok := e.LookupEnv(d.Name)
		if !ok || raw == "" {
			if !s.enableDefaults || !d.HasDefault {
				res.Errors[d.Name] = &MissingError{Name: d.Name}
				continue
			}
			raw = d.Default
		}

		v, err := d.Type.Coerce(raw)
		if err != nil {
			res.Errors[d.Name] = &InvalidError{
				Name:  d.Name,
				Value: raw,
				Type:  d.Type.Name(),
				Err:   err,
			}
			continue
		}
		res.Values[d.Name] = v
	}

	return res
}

// Require validates and returns the typed values, or a *ConfigurationError
// listing every missing or invalid variable.
func (s *Schema) Require(e env.Provider, groups ...string) (map[string]any, error) {
	res := s.Validate(e, groups...)
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Values, nil
}
