package cmd

import (
	"github.com/spf13/cobra"

	"github.com/theyellowexpress/expressbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize expressbot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure expressbot and generates an expressbot.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
