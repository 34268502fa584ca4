package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/envied/internal/cli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of envied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRunner(cmd).Run(cli.VersionCommand{})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
