// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/fwconv/internal/convert"
	"github.com/pdiddy/fwconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert fixed-width files to delimited text",
	Long: `Convert reads each input file, slices every line into the fields of the
schema, trims the values and writes them joined by the separator.

Output goes next to each input with a suffix inserted before the extension
(in.txt becomes in_processed.txt) unless --output names a file or "-" for
stdout. Blank input lines are skipped unless --blank-lines=keep. With
--width-policy=pad every value is truncated or space-padded to its field
width. With --strict a line shorter than the schema is an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("schema", "s", "", "schema file (line or structured)")
	convertCmd.Flags().Var(newEnum(string(types.DialectAuto), dialectNames...), "dialect", "schema dialect: auto (by extension), line (csv) or structured (json, yaml)")
	convertCmd.Flags().String("separator", types.DefaultSeparator, `output field separator ("tab", "space", "pipe" and "semicolon" are accepted by name)`)
	convertCmd.Flags().Var(newEnum(string(types.WidthPassthrough), "passthrough", "pad"), "width-policy", "passthrough emits trimmed values; pad truncates or pads them to the field width")
	convertCmd.Flags().Var(newEnum(string(types.BlankSkip), "skip", "keep"), "blank-lines", "skip or keep blank input lines")
	convertCmd.Flags().Bool("strict", false, "fail when a line is shorter than the schema")
	convertCmd.Flags().Var(newEnum(string(types.LineEndingLF), "lf", "crlf"), "line-ending", "output line ending: lf or crlf")
	convertCmd.Flags().String("suffix", types.DefaultOutputSuffix, "suffix inserted before the input extension to name the output")
	convertCmd.Flags().Bool("skip-existing", false, "leave existing output files untouched")
	convertCmd.Flags().StringP("output", "o", "", `output path for a single input, or "-" for stdout`)

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := conversionConfig()
	if err != nil {
		return err
	}
	if cfg.Schema == "" {
		return fmt.Errorf("a schema is required: pass --schema or set schema in the config file")
	}
	output, _ := cmd.Flags().GetString("output")

	result, err := convert.ConvertBatch(afero.NewOsFs(), cfg.Schema, args, output, cfg, cmd.OutOrStdout(), appLog.Logger)
	if err != nil && result.HasFailures() {
		return fmt.Errorf("%d of %d file(s) failed: %w", result.Failed, result.Total(), err)
	}
	return err
}
