package main

import (
	"fmt"
	"os"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/strainkit/sift/schemadef"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a schema definition as JSON Schema",
	Long: `Loads the schema definition given with --schema and prints the
equivalent JSON Schema document on stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		if err := runExport(schemaPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	exportCmd.Flags().String("schema", "", "Path to the schema definition file (YAML)")
	exportCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(exportCmd)
}

func runExport(schemaPath string) error {
	schema, err := schemadef.LoadFile(schemaPath)
	if err != nil {
		return err
	}
	buf, err := j.MarshalIndent(schema.JSONSchema(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}
