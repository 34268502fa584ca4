// Package schema declares typed environment variables and validates an
// environment against them.
//
// A Schema is an ordered list of declarations. Each declaration names a
// variable, the Type its raw string value must be coerced to, and the groups
// it belongs to. Declarations without groups belong to the "default" group.
//
// Basic usage:
//
//	s := schema.New()
//	s.Declare("PORT", schema.Integer())
//	s.Declare("API_KEY", schema.String(), "production")
//
//	values, err := s.Require(env.OS(), "default", "production")
//	if err != nil {
//	    // err is a *schema.ConfigurationError listing every problem
//	}
//	port := values["PORT"].(int64)
//
// Validation is exhaustive: every active declaration is checked and all
// failures are reported together. Validate never fails; it returns a Result
// the caller can inspect. Require escalates any failure to a single
// *ConfigurationError.
//
// Types are resolved by name through a Registry, so new coercions can be
// added without touching the built-ins:
//
//	schema.DefaultRegistry().Register("port", schema.Custom("port", func(raw string) (any, error) {
//	    n, err := strconv.Atoi(raw)
//	    if err != nil || n < 1 || n > 65535 {
//	        return nil, fmt.Errorf("not a TCP port")
//	    }
//	    return n, nil
//	}))
package schema
