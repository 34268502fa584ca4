package extract

import (
	"io/fs"
	"log/slog"
	"regexp"
)

// NoMatchPolicy decides what a scan does when no file matches any glob.
type NoMatchPolicy int

const (
	// NoMatchEmpty returns an empty result.
	NoMatchEmpty NoMatchPolicy = iota
	// NoMatchFail fails the scan with a *NoMatchError.
	NoMatchFail
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithGlobs replaces DefaultGlobs.
func WithGlobs(globs ...string) Option {
	return func(e *Extractor) {
		e.globs = append([]string(nil), globs...)
	}
}

// WithTests appends TestGlobs to the glob list.
func WithTests(enabled bool) Option {
	return func(e *Extractor) {
		e.tests = enabled
	}
}

// WithRoot sets the directory globs are resolved against.
func WithRoot(dir string) Option {
	return func(e *Extractor) {
		e.root = dir
	}
}

// WithFS scans fsys instead of the directory given by WithRoot.
func WithFS(fsys fs.FS) Option {
	return func(e *Extractor) {
		e.fsys = fsys
	}
}

// WithPattern replaces DefaultPattern. The pattern must have at least one
// capture group; the first one is taken as the variable name.
func WithPattern(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		if re != nil {
			e.pattern = re
		}
	}
}

// WithNoMatchPolicy sets the behaviour for globs that match nothing.
func WithNoMatchPolicy(p NoMatchPolicy) Option {
	return func(e *Extractor) {
		e.noMatch = p
	}
}

// WithLogger sets the logger used to report skipped files.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}
