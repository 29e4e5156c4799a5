package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stegobench",
	Short: "Hide text in text and benchmark how it survives",
	Long: `stegobench hides a secret inside a cover text, either with narrow
space markers after spaces or with zero-width markers between characters,
and benchmarks both methods over plain text, HTML and PDF output.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
