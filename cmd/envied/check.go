package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/envied"
	"github.com/aretw0/envied/internal/cli"
	"github.com/aretw0/envied/internal/presentation/tui"
	"github.com/aretw0/envied/pkg/env"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether your environment contains the required variables",
	Long: `Checks whether required variables are present and valid in your shell.

Groups default to $ENVIED_GROUPS when set, otherwise "default".
On success the process exits with status 0. Otherwise the missing or invalid
variables are listed and the process exits with status 1.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("envfile")
		groups, _ := cmd.Flags().GetStringSlice("groups")
		if !cmd.Flags().Changed("groups") {
			if _, ok := env.OS().LookupEnv(envied.EnvGroups); ok {
				groups = envied.GroupsFromEnv(env.OS())
			}
		}
		return newRunner(cmd).Run(cli.CheckCommand{Envfile: path, Groups: groups})
	},
}

var checkHerokuCmd = &cobra.Command{
	Use:   "heroku",
	Short: "Check whether a Heroku config contains the required variables",
	Long: `Checks the config of your Heroku app against the local Envfile.

The Heroku config must be piped to this command:

  heroku config --app my-app | envied check heroku

On success the process exits with status 0. Otherwise the missing or invalid
variables are listed and the process exits with status 1.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("envfile")
		groups, _ := cmd.Flags().GetStringSlice("groups")
		return newRunner(cmd).Run(cli.CheckHerokuCommand{
			Envfile:    path,
			Groups:     groups,
			Stdin:      cmd.InOrStdin(),
			StdinIsTTY: tui.IsTerminal(os.Stdin),
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkHerokuCmd)

	checkCmd.Flags().StringSlice("groups", []string{"default"}, "Groups to check (e.g. default,production)")
	checkHerokuCmd.Flags().StringSlice("groups", []string{"default", "production"}, "Groups to check")
}
