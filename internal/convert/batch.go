// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pdiddy/fwconv/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Files     []FileResult
}

// Total returns the total number of input files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts every input against the schema at schemaPath. The
// schema is parsed once; a schema error aborts the batch before any input is
// touched. Each input is then converted independently and its outcome is
// logged. The returned error combines all per-file failures.
//
// outputPath overrides the derived output name and is only valid with a
// single input; StdoutPath writes the converted text to stdout.
func ConvertBatch(fs afero.Fs, schemaPath string, inputs []string, outputPath string, cfg types.ConversionConfig, stdout io.Writer, log *zap.Logger) (BatchResult, error) {
	var result BatchResult
	if log == nil {
		log = zap.NewNop()
	}
	if outputPath != "" && len(inputs) > 1 {
		return result, fmt.Errorf("an explicit output path needs exactly one input, got %d", len(inputs))
	}

	cfg = cfg.WithDefaults()
	if _, err := cfg.TransformOptions.Normalize(); err != nil {
		return result, err
	}
	sch, err := LoadSchema(fs, schemaPath, cfg.Dialect)
	if err != nil {
		return result, err
	}
	log.Debug("Schema loaded",
		zap.String("schema", schemaPath),
		zap.Strings("fields", sch.Names()),
		zap.Int("record width", sch.TotalWidth()))

	var errs error
	for _, in := range inputs {
		res := ConvertFile(fs, sch, in, outputPath, cfg, stdout)
		result.Files = append(result.Files, res)
		switch res.Status {
		case types.ConversionDone:
			result.Converted++
			log.Info("Converted", zap.String("input", res.Input), zap.String("output", res.Output), zap.Int("lines", res.Lines))
		case types.ConversionSkipped:
			result.Skipped++
			log.Info("Skipped, output exists", zap.String("input", res.Input), zap.String("output", res.Output))
		case types.ConversionFailed:
			result.Failed++
			fields := []zap.Field{zap.String("input", res.Input), zap.Error(res.Err)}
			if kind := types.KindOf(res.Err); kind != nil {
				fields = append(fields, zap.String("kind", kind.Error()))
			}
			log.Error("Conversion failed", fields...)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", res.Input, res.Err))
		}
	}

	log.Info("Batch summary",
		zap.Int("converted", result.Converted),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
		zap.Int("total", result.Total()))
	return result, errs
}
