package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Sift validates documents against declarative schemas",
	Long: `Sift checks a JSON or YAML document against a schema definition and
prints the sanitized result: only declared fields survive, defaults are
filled in, and the first violation is reported with its exact path.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
