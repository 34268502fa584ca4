// Package report formats validation and extraction results for humans.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/envied/internal/presentation/tui"
	"github.com/aretw0/envied/pkg/extract"
	"github.com/aretw0/envied/pkg/schema"
)

// sortedOccurrences orders a variable's occurrences by path length, keeping
// discovery order for ties.
func sortedOccurrences(occs []extract.Occurrence) []extract.Occurrence {
	out := append([]extract.Occurrence(nil), occs...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Path) < len(out[j].Path)
	})
	return out
}

func summary(occs extract.Occurrences) string {
	return fmt.Sprintf("Found %d occurrences of %d variables:", occs.Count(), len(occs))
}

// WriteExtract writes the plain-text extraction report:
//
//	Found 2 occurrences of 1 variables:
//	PORT
//	* config.ru:3
//	* app/server.rb:10
func WriteExtract(w io.Writer, occs extract.Occurrences) error {
	var b strings.Builder
	b.WriteString(summary(occs))
	b.WriteString("\n")
	for _, name := range occs.Names() {
		b.WriteString(name)
		b.WriteString("\n")
		for _, o := range sortedOccurrences(occs[name]) {
			fmt.Fprintf(&b, "* %s\n", o)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ExtractMarkdown renders the extraction report as markdown, one heading
// per variable.
func ExtractMarkdown(occs extract.Occurrences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", summary(occs))
	for _, name := range occs.Names() {
		fmt.Fprintf(&b, "### %s\n\n", name)
		for _, o := range sortedOccurrences(occs[name]) {
			fmt.Fprintf(&b, "* `%s`\n", o)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteCheck prints the outcome of a validation run. It returns the
// configuration error unchanged so callers can set the exit status.
func WriteCheck(w io.Writer, res *schema.Result, target string) error {
	st := tui.NewStatus(w)
	groups := strings.Join(res.Groups, ", ")

	err := res.Err()
	if err == nil {
		st.Success("All variables for group(s) %s are present and valid%s", groups, target)
		return nil
	}

	var cfgErr *schema.ConfigurationError
	if !errors.As(err, &cfgErr) {
		return err
	}
	st.Failure("%d of %d variable(s) for group(s) %s are missing or invalid%s", len(cfgErr.Errors), res.Total, groups, target)
	for _, e := range cfgErr.Errors {
		st.Item("%s", describe(e))
	}
	return err
}

func describe(err error) string {
	var missing *schema.MissingError
	var invalid *schema.InvalidError
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("%s: missing", missing.Name)
	case errors.As(err, &invalid):
		return fmt.Sprintf("%s: invalid %s (got %q)", invalid.Name, invalid.Type, invalid.Value)
	default:
		return err.Error()
	}
}
