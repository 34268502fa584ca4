package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envied/internal/cli"
	"github.com/aretw0/envied/internal/envfile"
	"github.com/aretw0/envied/internal/logging"
	"github.com/aretw0/envied/pkg/env"
)

var rootCmd = &cobra.Command{
	Use:           "envied",
	Short:         "envied checks that your environment has every variable your app needs",
	Long:          `envied validates environment variables against a typed Envfile and finds ENV references in your code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("envfile", envfile.DefaultName, "Path to the Envfile")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug information to stderr")
}

// newRunner builds a Runner wired to the process streams and environment.
func newRunner(cmd *cobra.Command) *cli.Runner {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return &cli.Runner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Env:    env.OS(),
		Logger: logging.New(logging.LevelFor(verbose)),
	}
}
