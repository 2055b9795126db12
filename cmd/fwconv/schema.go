// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fwconv/internal/convert"
	"github.com/pdiddy/fwconv/internal/schema"
	"github.com/pdiddy/fwconv/pkg/types"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Validate a schema file and print its fields",
	Long: `Schema parses a schema file and prints its fields with their column
offsets. Use --format to re-emit the schema in another dialect: line writes
"name,width" pairs, json and yaml write a fields document.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().Var(newEnum(string(types.DialectAuto), dialectNames...), "dialect", "schema dialect: auto (by extension), line (csv) or structured (json, yaml)")
	schemaCmd.Flags().Var(newEnum("table", "table", "line", "json", "yaml"), "format", "output format: table, line, json or yaml")

	rootCmd.AddCommand(schemaCmd)
}

// fieldsDoc is the structured-dialect document written by json and yaml output.
type fieldsDoc struct {
	Fields types.Schema `json:"fields" yaml:"fields"`
}

func runSchema(cmd *cobra.Command, args []string) error {
	dialect, err := schema.ParseDialect(viper.GetString("dialect"))
	if err != nil {
		return err
	}
	sch, err := convert.LoadSchema(afero.NewOsFs(), args[0], dialect)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	switch format {
	case "line":
		text, err := schema.FormatLine(sch)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(fieldsDoc{Fields: sch})
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(fieldsDoc{Fields: sch}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(out, sch)
	}
}

// writeTable prints one row per field with 1-based start and end columns.
func writeTable(w io.Writer, sch types.Schema) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tWIDTH\tSTART\tEND")
	start := 1
	for i, f := range sch {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", i+1, f.Name, f.Width, start, start+f.Width-1)
		start += f.Width
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d field(s), record width %d\n", len(sch), sch.TotalWidth())
	return err
}
