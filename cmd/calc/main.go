package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Run a session of semicolon-separated arithmetic statements through the lr driver",
	}

	rootCmd.PersistentFlags().String("config", "", "path to a calc.yaml run configuration")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newTraceCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
