// Package cli implements the envied commands independently of the flag
// parser, so they can be driven from cobra and from tests alike.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aretw0/envied"
	"github.com/aretw0/envied/internal/envfile"
	"github.com/aretw0/envied/internal/logging"
	"github.com/aretw0/envied/internal/presentation/report"
	"github.com/aretw0/envied/internal/presentation/tui"
	"github.com/aretw0/envied/pkg/env"
	"github.com/aretw0/envied/pkg/extract"
)

// ExitError carries a process exit status. Its message has already been
// shown to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// Runner executes commands against injected I/O and environment. Reports go to
// Stdout, notices about skipped input go to Stderr.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    env.Provider
	Logger *slog.Logger
}

// Run dispatches cmd to its handler.
func (r *Runner) Run(cmd Command) error {
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	if r.Env == nil {
		r.Env = env.OS()
	}
	if r.Stderr == nil {
		r.Stderr = io.Discard
	}

	switch c := cmd.(type) {
	case VersionCommand:
		_, err := fmt.Fprintf(r.Stdout, "envied version %s\n", strings.TrimSpace(envied.Version))
		return err
	case InitCommand:
		return r.runInit(c)
	case CheckCommand:
		return r.runCheck(c.Envfile, c.Groups, r.Env, "")
	case CheckHerokuCommand:
		return r.runCheckHeroku(c)
	case ExtractCommand:
		return r.runExtract(c)
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

func (r *Runner) runInit(c InitCommand) error {
	path := c.Path
	if path == "" {
		path = envfile.DefaultName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	fmt.Fprintf(r.Stdout, "Writing Envfile to %s\n", abs)
	if err := envfile.CreateScaffold(path, c.Force); err != nil {
		return err
	}
	fmt.Fprintf(r.Stdout, `Add the following snippet to your app so it's run during initialization:

	values, err := envied.Require(%q, envied.GroupsFromEnv(env.OS())...)
	if err != nil {
		log.Fatal(err)
	}
`, path)
	return nil
}

func (r *Runner) runCheck(path string, groups []string, provider env.Provider, target string) error {
	s, err := envfile.Load(path)
	if err != nil {
		return err
	}

	res := s.Validate(provider, groups...)
	r.Logger.Debug("validated environment", "groups", res.Groups, "total", res.Total, "failures", len(res.Errors))

	if err := report.WriteCheck(r.Stdout, res, target); err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

func (r *Runner) runCheckHeroku(c CheckHerokuCommand) error {
	if c.StdinIsTTY || c.Stdin == nil {
		return errors.New("please pipe the contents of `heroku config` to this command, e.g. `heroku config | envied check heroku`")
	}

	herokuEnv, err := env.ParseHeroku(c.Stdin)
	if err != nil {
		return err
	}
	r.Logger.Debug("read heroku config", "variables", len(herokuEnv))
	return r.runCheck(c.Envfile, c.Groups, herokuEnv, " in your Heroku app")
}

func (r *Runner) runExtract(c ExtractCommand) error {
	opts := []extract.Option{
		extract.WithTests(c.Tests),
		extract.WithLogger(r.Logger),
	}
	if c.Root != "" {
		opts = append(opts, extract.WithRoot(c.Root))
	}
	if len(c.Globs) > 0 {
		opts = append(opts, extract.WithGlobs(c.Globs...))
	}
	if c.Strict {
		opts = append(opts, extract.WithNoMatchPolicy(extract.NoMatchFail))
	}
	if c.Pattern != "" {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		if re.NumSubexp() < 1 {
			return fmt.Errorf("invalid pattern: %q has no capture group for the variable name", c.Pattern)
		}
		opts = append(opts, extract.WithPattern(re))
	}

	rep, err := extract.New(opts...).Scan()
	if err != nil {
		return err
	}
	for _, sk := range rep.Skipped {
		r.Logger.Debug("skipped file", "path", sk.Path, "reason", sk.Reason)
		fmt.Fprintf(r.Stderr, "Skipped %s: %s\n", sk.Path, sk.Reason)
	}

	if c.Markdown {
		out, err := tui.NewRenderer()(report.ExtractMarkdown(rep.Occurrences))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = io.WriteString(r.Stdout, out)
		return err
	}
	return report.WriteExtract(r.Stdout, rep.Occurrences)
}
