package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intakectl",
	Short: "Offline tools for the intake insights service",
	Long: `intakectl runs the call outcome classifier and the patient directory
without the HTTP service, for checking transcripts and patient workbooks.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
