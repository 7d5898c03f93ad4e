package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at release time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sift",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sift version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
