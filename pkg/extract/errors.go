package extract

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutsideRoot marks a glob that is absolute or climbs above the root.
	ErrOutsideRoot = errors.New("pattern must be relative to the scan root")
	// ErrNotDir marks a scan root that is not a directory.
	ErrNotDir = errors.New("not a directory")
)

// RootError reports a scan root that cannot be used.
type RootError struct {
	Root string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("scan root %q: %v", e.Root, e.Err)
}

func (e *RootError) Unwrap() error { return e.Err }

// GlobError reports a glob that could not be expanded.
type GlobError struct {
	Glob string
	Err  error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("glob %q: %v", e.Glob, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }

// NoMatchError reports that no file matched any glob.
type NoMatchError struct {
	Globs []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no files matched globs: %s", strings.Join(e.Globs, " "))
}
