// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fwconv CLI, which converts
// fixed-width text records into delimited records driven by a field-width
// schema file.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/fwconv/internal/logging"
	"github.com/pdiddy/fwconv/internal/schema"
	"github.com/pdiddy/fwconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appLog is the logger for the running command. It is a no-op logger until
// the root PersistentPreRunE has run.
var appLog = &logging.Logger{Logger: zap.NewNop()}

// flagKeys maps command-line flag names to configuration keys. Flags are
// bound per invocation so that commands sharing a key (e.g. --dialect on
// both convert and schema) each bind their own flag.
var flagKeys = map[string]string{
	"schema":        "schema",
	"dialect":       "dialect",
	"separator":     "separator",
	"width-policy":  "width_policy",
	"blank-lines":   "blank_lines",
	"strict":        "strict",
	"line-ending":   "line_ending",
	"suffix":        "output_suffix",
	"skip-existing": "skip_existing",
	"log-level":     "log.level",
	"log-file":      "log.file",
}

// rootCmd is the base command for the fwconv CLI.
var rootCmd = &cobra.Command{
	Use:   "fwconv",
	Short: "Convert fixed-width records into delimited text",
	Long: `fwconv slices each line of a fixed-width text file into fields using a
schema of field names and widths, trims the values and joins them with a
separator.

Schemas are either line files with one "name,width" pair per line (# starts
a comment), or JSON/YAML documents with a fields list of {name, width}
objects. Settings can come from flags, FWCONV_* environment variables, or
a fwconv.yaml config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}
		// Read the leaves individually: UnmarshalKey("log") ignores bound flags.
		lc := logging.Config{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		}
		l, err := logging.NewWithConsole(lc, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		appLog = l
		if used := viper.ConfigFileUsed(); used != "" {
			appLog.Debug("Using config file", zap.String("path", used))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fwconv.yaml or ~/.config/fwconv/fwconv.yaml)")
	rootCmd.PersistentFlags().String("log-level", logging.LevelNormal, "console log level: none, normal or debug")
	rootCmd.PersistentFlags().String("log-file", "", "also write the log to this file")
}

// initConfig loads defaults, the config file, FWCONV_* environment variables
// and the flags of cmd into the global viper instance.
func initConfig(cmd *cobra.Command) error {
	viper.Reset()

	def := types.DefaultTransformOptions()
	viper.SetDefault("schema", "")
	viper.SetDefault("dialect", string(types.DialectAuto))
	viper.SetDefault("separator", types.DefaultSeparator)
	viper.SetDefault("width_policy", string(def.WidthPolicy))
	viper.SetDefault("blank_lines", string(def.BlankLines))
	viper.SetDefault("strict", false)
	viper.SetDefault("line_ending", string(def.LineEnding))
	viper.SetDefault("output_suffix", types.DefaultOutputSuffix)
	viper.SetDefault("skip_existing", false)
	viper.SetDefault("log.level", logging.LevelNormal)
	viper.SetDefault("log.file", "")

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fwconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fwconv"))
		}
	}

	viper.SetEnvPrefix("FWCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}
	return nil
}

// conversionConfig decodes the merged settings into a ConversionConfig.
func conversionConfig() (types.ConversionConfig, error) {
	var cfg types.ConversionConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading settings: %w", err)
	}
	d, err := schema.ParseDialect(string(cfg.Dialect))
	if err != nil {
		return cfg, err
	}
	cfg.Dialect = d
	cfg.Separator = decodeSeparator(cfg.Separator)
	return cfg, nil
}

func main() {
	err := rootCmd.Execute()
	if cerr := appLog.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, "closing log:", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
