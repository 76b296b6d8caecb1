package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "votingd",
		Short:        "Client-side coordinator for on-ledger elections",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(getStartCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
