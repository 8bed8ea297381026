package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "expressbot",
	Short: "Conversational order intake and tracking for Yellow Express",
	Long: `Expressbot runs the Yellow Express shipping assistant: a Spanish-language
chat service that quotes prices, screens prohibited items, collects
orders step by step, and answers tracking questions over the web chat
and the WhatsApp webhook.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "expressbot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
