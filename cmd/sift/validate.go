package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/strainkit/sift"
	"github.com/strainkit/sift/schemadef"
	"github.com/strainkit/sift/source"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a document against a schema definition",
	Long: `Reads a JSON or YAML document, validates it against the schema given
with --schema, and prints the sanitized document on success.

The document is read from the file argument, or from stdin when no file
is given. The input format comes from --input, or is inferred from the
file extension (.yaml/.yml means YAML, anything else means JSON).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		format, _ := cmd.Flags().GetString("input")

		if err := runValidate(schemaPath, format, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	validateCmd.Flags().String("schema", "", "Path to the schema definition file (YAML)")
	validateCmd.Flags().String("input", "", "Input format: json or yaml (default: inferred from extension)")
	validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(schemaPath, format string, args []string) error {
	schema, err := schemadef.LoadFile(schemaPath)
	if err != nil {
		return err
	}

	name := "-"
	var data []byte
	if len(args) > 0 {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	doc, err := decodeDocument(name, format, data)
	if err != nil {
		return err
	}

	out, err := sift.Process(doc, schema)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	buf, err := j.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}

// decodeDocument picks the decoder from the explicit format flag, falling
// back to the file extension. Stdin without a flag is treated as JSON.
func decodeDocument(name, format string, data []byte) (map[string]any, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	switch format {
	case "json":
		return source.JSONBytes(data)
	case "yaml":
		return source.YAMLBytes(data)
	default:
		return nil, fmt.Errorf("unknown input format %q (want json or yaml)", format)
	}
}
