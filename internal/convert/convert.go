// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert wires schema parsing, file loading and record
// transformation into whole-file conversions.
//
// Process and ProcessText are pure apart from reading their inputs: they
// never log and never write. ConvertFile and ConvertBatch are the caller
// side that writes derived output files and reports progress.
package convert

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/fwconv/internal/fileio"
	"github.com/pdiddy/fwconv/internal/schema"
	"github.com/pdiddy/fwconv/internal/transform"
	"github.com/pdiddy/fwconv/pkg/types"
)

// StdoutPath as an output path sends the converted text to the batch writer
// instead of a file.
const StdoutPath = "-"

// LoadSchema reads and parses the schema file at path. DialectAuto is
// resolved from the file extension. Parse failures are wrapped as
// "error parsing configuration" and keep their kind for errors.Is.
func LoadSchema(fs afero.Fs, path string, dialect types.Dialect) (types.Schema, error) {
	src, err := fileio.ReadText(fs, path)
	if err != nil {
		return nil, err
	}
	return parseSchema(src, path, schema.Resolve(dialect, path))
}

// Process converts the input file at inputPath using the schema file at
// schemaPath and returns the delimited text. An empty cfg.Separator means ",".
func Process(fs afero.Fs, schemaPath, inputPath string, cfg types.ConversionConfig) (string, error) {
	cfg = cfg.WithDefaults()
	sch, err := LoadSchema(fs, schemaPath, cfg.Dialect)
	if err != nil {
		return "", err
	}
	input, err := fileio.ReadText(fs, inputPath)
	if err != nil {
		return "", err
	}
	return transformInput(sch, input, inputPath, cfg)
}

// ProcessText is Process for content already in memory. The dialect must be
// line or structured; DialectAuto has no file name to resolve against and
// is treated as line.
func ProcessText(schemaSrc string, dialect types.Dialect, input string, cfg types.ConversionConfig) (string, error) {
	cfg = cfg.WithDefaults()
	if dialect == types.DialectAuto || dialect == "" {
		dialect = types.DialectLine
	}
	sch, err := parseSchema(schemaSrc, "", dialect)
	if err != nil {
		return "", err
	}
	return transformInput(sch, input, "", cfg)
}

func parseSchema(src, path string, dialect types.Dialect) (types.Schema, error) {
	if src == "" {
		return nil, &types.Error{Kind: types.ErrEmptyInput, Path: path, Msg: "schema file is empty"}
	}
	sch, err := schema.Parse(src, dialect)
	if err != nil {
		setPath(err, path)
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}
	return sch, nil
}

func transformInput(sch types.Schema, input, path string, cfg types.ConversionConfig) (string, error) {
	if input == "" {
		return "", &types.Error{Kind: types.ErrEmptyInput, Path: path, Msg: "input file is empty"}
	}
	out, err := transform.Transform(sch, cfg.Separator, input, cfg.TransformOptions)
	if err != nil {
		setPath(err, path)
		return "", err
	}
	return out, nil
}

// FileResult is the outcome of converting one input file.
type FileResult struct {
	Input  string
	Output string
	Lines  int
	Status types.ConversionStatus
	Err    error
}

// ConvertFile converts inputPath with an already parsed schema and writes the
// result. An empty outputPath derives one with fileio.OutputPath; StdoutPath
// writes to stdout. With cfg.SkipExisting an existing output file is left
// untouched and the result is ConversionSkipped.
func ConvertFile(fs afero.Fs, sch types.Schema, inputPath, outputPath string, cfg types.ConversionConfig, stdout io.Writer) FileResult {
	cfg = cfg.WithDefaults()
	if outputPath == "" {
		outputPath = fileio.OutputPath(inputPath, cfg.OutputSuffix)
	}
	res := FileResult{Input: inputPath, Output: outputPath}

	if cfg.SkipExisting && outputPath != StdoutPath {
		if ok, _ := afero.Exists(fs, outputPath); ok {
			res.Status = types.ConversionSkipped
			return res
		}
	}

	input, err := fileio.ReadText(fs, inputPath)
	if err != nil {
		return failed(res, err)
	}
	out, err := transformInput(sch, input, inputPath, cfg)
	if err != nil {
		return failed(res, err)
	}

	if outputPath == StdoutPath {
		if _, err := io.WriteString(stdout, out); err != nil {
			return failed(res, &types.Error{Kind: types.ErrFileWrite, Path: "<stdout>", Err: err})
		}
	} else if err := fileio.WriteText(fs, outputPath, out); err != nil {
		return failed(res, err)
	}

	res.Lines = countLines(out, cfg.LineEnding)
	res.Status = types.ConversionDone
	return res
}

func failed(res FileResult, err error) FileResult {
	res.Status = types.ConversionFailed
	res.Err = err
	return res
}

func countLines(out string, le types.LineEnding) int {
	return strings.Count(out, le.Terminator())
}

// setPath fills in the path of a *types.Error that does not carry one yet.
func setPath(err error, path string) {
	var e *types.Error
	if errors.As(err, &e) && e.Path == "" {
		e.Path = path
	}
}
