package cli

import (
	"io"
)

// Command is one entry of the envied action table. The concrete types below
// are the only implementations; Runner.Run dispatches on them.
type Command interface {
	command()
}

// VersionCommand prints the version.
type VersionCommand struct{}

// InitCommand writes a starter Envfile.
type InitCommand struct {
	Path  string
	Force bool
}

// CheckCommand validates the process environment against the Envfile.
type CheckCommand struct {
	Envfile string
	Groups  []string
}

// CheckHerokuCommand validates a `heroku config` dump read from Stdin.
type CheckHerokuCommand struct {
	Envfile    string
	Groups     []string
	Stdin      io.Reader
	StdinIsTTY bool
}

// ExtractCommand scans source files for variable references.
type ExtractCommand struct {
	Root     string
	Globs    []string // Empty means the extractor defaults
	Tests    bool
	Strict   bool   // Fail when no file matches
	Pattern  string // Optional regexp overriding the default reference pattern
	Markdown bool   // Render through glamour
}

func (VersionCommand) command()     {}
func (InitCommand) command()        {}
func (CheckCommand) command()       {}
func (CheckHerokuCommand) command() {}
func (ExtractCommand) command()     {}
