package envfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/envied/pkg/schema"
)

const scaffoldHeader = `# Envfile: environment variables this application requires.
#
# Types: string, symbol, integer, float, boolean, duration, date, time,
# array, hash, uri, enum (with values).
# Variables without groups belong to the "default" group.
`

// Scaffold returns the starter schema written by `envied init`.
func Scaffold() *schema.Schema {
	s := schema.New(schema.WithDefaults(true))
	_ = s.Declare("PORT", schema.Integer())
	_ = s.DeclareDefault("LOG_LEVEL", schema.Enum("debug", "info", "warn", "error"), "info")
	_ = s.Declare("SECRET_KEY_BASE", schema.String(), "production")
	return s
}

// WriteScaffold writes the starter Envfile to w.
func WriteScaffold(w io.Writer) error {
	if _, err := io.WriteString(w, scaffoldHeader); err != nil {
		return err
	}
	return Write(w, Scaffold())
}

// CreateScaffold writes the starter Envfile to path. An existing file is
// only replaced when force is set.
func CreateScaffold(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("failed to create envfile: %w", err)
	}
	if err := WriteScaffold(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
