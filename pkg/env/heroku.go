package env

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseHeroku reads the output of `heroku config`.
//
// The first line is a header (e.g. "=== my-app Config Vars") and is skipped.
// Every following non-blank line is "KEY: value"; only the first colon
// separates key from value.
func ParseHeroku(r io.Reader) (Map, error) {
	m := make(Map)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("heroku config line %d: expected KEY: value, got %q", lineNo, line)
		}
		k = strings.TrimSpace(k)
		if k == "" {
			return nil, fmt.Errorf("heroku config line %d: empty key", lineNo)
		}
		m[k] = strings.TrimSpace(v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read heroku config: %w", err)
	}
	return m, nil
}
