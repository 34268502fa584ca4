package schema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the typed values of a passing result into out, which must be
// a pointer to a struct. Fields match variable names case-insensitively or
// through an `env:"NAME"` tag.
//
//	var cfg struct {
//	    Port   int64  `env:"PORT"`
//	    APIKey string `env:"API_KEY"`
//	}
//	err := res.Decode(&cfg)
func (r *Result) Decode(out any) error {
	if err := r.Err(); err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "env",
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(r.Values); err != nil {
		return fmt.Errorf("failed to decode values: %w", err)
	}
	return nil
}
