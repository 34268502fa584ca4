package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envied/internal/cli"
	"github.com/aretw0/envied/internal/presentation/tui"
	"github.com/aretw0/envied/pkg/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Grep code to find ENV variables",
	Long: `Greps source files to find all ENV variables your code is using.

This helps you find variables to put in your Envfile.
By default the test/spec folders are excluded. Use --tests to include them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		globs, _ := cmd.Flags().GetStringArray("globs")
		tests, _ := cmd.Flags().GetBool("tests")
		strict, _ := cmd.Flags().GetBool("strict")
		pattern, _ := cmd.Flags().GetString("pattern")
		dir, _ := cmd.Flags().GetString("dir")
		plain, _ := cmd.Flags().GetBool("plain")

		return newRunner(cmd).Run(cli.ExtractCommand{
			Root:     dir,
			Globs:    globs,
			Tests:    tests,
			Strict:   strict,
			Pattern:  pattern,
			Markdown: !plain && tui.IsTerminal(os.Stdout),
		})
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringArray("globs", extract.DefaultGlobs, "Glob patterns of files to scan")
	extractCmd.Flags().Bool("tests", false, "Include test/spec folders")
	extractCmd.Flags().Bool("strict", false, "Fail when no file matches the globs")
	extractCmd.Flags().String("pattern", "", "Regexp for variable references; the first capture group is the name")
	extractCmd.Flags().String("dir", ".", "Directory the globs are resolved against")
	extractCmd.Flags().Bool("plain", false, "Never render the report as markdown")
}
