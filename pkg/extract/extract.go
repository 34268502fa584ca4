// Package extract scans source files for environment variable references.
//
// It is a discovery aid: the result suggests which variables a schema should
// declare. Only statically known names are recognised, e.g. ENV["PORT"] or
// ENV.fetch('PORT'); interpolated names are ignored.
package extract

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/envied/internal/logging"
)

// DefaultGlobs cover common production source locations.
var DefaultGlobs = []string{
	"*.*",
	"Gemfile",
	"Rakefile",
	"Procfile",
	"Thorfile",
	"config.ru",
	"{app,config,db,lib,script}/**/*",
}

// TestGlobs are appended when tests are included.
var TestGlobs = []string{"{test,spec}/**/*"}

// DefaultPattern matches ENV["NAME"], ENV['NAME'] and ENV.fetch("NAME").
// The first capture group is the variable name.
var DefaultPattern = regexp.MustCompile(`ENV(?:\[\s*|\.fetch\(\s*)["']([A-Za-z_][A-Za-z0-9_]*)["']`)

// binarySniffLen is how much of a file is inspected for NUL bytes.
const binarySniffLen = 8000

// Occurrence locates one reference to a variable.
type Occurrence struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Line int    `json:"line"`
}

// String renders an occurrence as path:line.
func (o Occurrence) String() string {
	return fmt.Sprintf("%s:%d", o.Path, o.Line)
}

// Occurrences maps a variable name to its references in discovery order.
type Occurrences map[string][]Occurrence

// Names returns the variable names in lexical order.
func (o Occurrences) Names() []string {
	names := make([]string, 0, len(o))
	for n := range o {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of occurrences.
func (o Occurrences) Count() int {
	n := 0
	for _, occs := range o {
		n += len(occs)
	}
	return n
}

// SkippedFile is a matched file that could not be scanned.
type SkippedFile struct {
	Path   string
	Reason string
}

// Report is the full outcome of a scan.
type Report struct {
	Occurrences Occurrences
	Files       []string // Scanned files, in scan order
	Skipped     []SkippedFile
}

// Extractor scans files matched by a list of globs.
type Extractor struct {
	root    string
	fsys    fs.FS
	globs   []string
	tests   bool
	pattern *regexp.Regexp
	noMatch NoMatchPolicy
	logger  *slog.Logger
}

// New creates an Extractor. Without options it scans DefaultGlobs under the
// working directory.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		root:    ".",
		globs:   DefaultGlobs,
		pattern: DefaultPattern,
		noMatch: NoMatchEmpty,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.fsys == nil {
		e.fsys = os.DirFS(e.root)
	}
	return e
}

// Globs returns the effective glob list.
func (e *Extractor) Globs() []string {
	globs := append([]string(nil), e.globs...)
	if e.tests {
		globs = append(globs, TestGlobs...)
	}
	return globs
}

// Extract returns every variable reference found.
func (e *Extractor) Extract() (Occurrences, error) {
	rep, err := e.Scan()
	if err != nil {
		return nil, err
	}
	return rep.Occurrences, nil
}

// Scan expands the globs, reads each matched file once and records every
// variable reference. Unreadable and binary files are skipped and listed in
// the report. A malformed glob, or one reaching outside the root, fails the
// scan with a *GlobError. A missing root is a *RootError.
func (e *Extractor) Scan() (*Report, error) {
	info, err := fs.Stat(e.fsys, ".")
	if err != nil {
		return nil, &RootError{Root: e.root, Err: err}
	}
	if !info.IsDir() {
		return nil, &RootError{Root: e.root, Err: ErrNotDir}
	}

	globs := e.Globs()
	files, err := e.expand(globs)
	if err != nil {
		return nil, err
	}

	rep := &Report{Occurrences: make(Occurrences)}
	if len(files) == 0 {
		if e.noMatch == NoMatchFail {
			return nil, &NoMatchError{Globs: globs}
		}
		return rep, nil
	}

	for _, path := range files {
		data, err := fs.ReadFile(e.fsys, path)
		if err != nil {
			e.logger.Debug("skipping unreadable file", "path", path, "err", err)
			rep.Skipped = append(rep.Skipped, SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		if isBinary(data) {
			e.logger.Debug("skipping binary file", "path", path)
			rep.Skipped = append(rep.Skipped, SkippedFile{Path: path, Reason: "binary file"})
			continue
		}
		rep.Files = append(rep.Files, path)
		e.scanFile(path, data, rep.Occurrences)
	}

	e.logger.Debug("scan finished",
		"files", len(rep.Files),
		"skipped", len(rep.Skipped),
		"variables", len(rep.Occurrences))
	return rep, nil
}

// expand resolves globs to a list of files without duplicates, in order of
// first discovery.
func (e *Extractor) expand(globs []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, g := range globs {
		pattern := strings.TrimPrefix(g, "./")
		if !doublestar.ValidatePattern(pattern) {
			return nil, &GlobError{Glob: g, Err: doublestar.ErrBadPattern}
		}
		if !fs.ValidPath(pattern) {
			return nil, &GlobError{Glob: g, Err: ErrOutsideRoot}
		}
		matches, err := doublestar.Glob(e.fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &GlobError{Glob: g, Err: err}
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	return files, nil
}

func (e *Extractor) scanFile(path string, data []byte, out Occurrences) {
	type key struct {
		name string
		line int
	}
	recorded := make(map[key]bool)

	for i, line := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		for _, m := range e.pattern.FindAllStringSubmatchIndex(line, -1) {
			if len(m) < 4 || m[2] < 0 {
				continue
			}
			if strings.Contains(line[:m[0]], "#") {
				continue
			}
			name := line[m[2]:m[3]]
			k := key{name: name, line: lineNo}
			if recorded[k] {
				continue
			}
			recorded[k] = true
			out[name] = append(out[name], Occurrence{Name: name, Path: path, Line: lineNo})
		}
	}
}

func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
