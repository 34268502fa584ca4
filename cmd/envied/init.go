package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/envied/internal/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a starter Envfile in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("envfile")
		force, _ := cmd.Flags().GetBool("force")
		return newRunner(cmd).Run(cli.InitCommand{Path: path, Force: force})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing Envfile")
}
