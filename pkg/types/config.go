// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// WidthPolicy selects how extracted values are emitted.
type WidthPolicy string

const (
	// WidthPassthrough emits the trimmed value as-is.
	WidthPassthrough WidthPolicy = "passthrough"

	// WidthPad truncates or right-pads the trimmed value to the field width,
	// producing fixed-width columns between separators.
	WidthPad WidthPolicy = "pad"
)

// BlankLinePolicy selects what happens to zero-length input lines.
type BlankLinePolicy string

const (
	BlankSkip BlankLinePolicy = "skip"
	BlankKeep BlankLinePolicy = "keep"
)

// LineEnding selects the output line terminator.
type LineEnding string

const (
	LineEndingLF   LineEnding = "lf"
	LineEndingCRLF LineEnding = "crlf"
)

// Terminator returns the byte sequence for the line ending. Unknown values
// fall back to "\n".
func (l LineEnding) Terminator() string {
	if l == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

const (
	// DefaultSeparator is used when the caller supplies an empty separator.
	DefaultSeparator = ","

	// DefaultOutputSuffix is inserted before the input extension to derive
	// the output path.
	DefaultOutputSuffix = "_processed"
)

// TransformOptions controls the record transformer.
type TransformOptions struct {
	// WidthPolicy selects passthrough (default) or pad.
	WidthPolicy WidthPolicy `json:"width_policy" yaml:"width_policy" mapstructure:"width_policy"`

	// BlankLines selects skip (default) or keep.
	BlankLines BlankLinePolicy `json:"blank_lines" yaml:"blank_lines" mapstructure:"blank_lines"`

	// StrictWidth fails a line whose remaining length is shorter than the
	// next field's width instead of taking what is available.
	StrictWidth bool `json:"strict" yaml:"strict" mapstructure:"strict"`

	// LineEnding selects lf (default) or crlf.
	LineEnding LineEnding `json:"line_ending" yaml:"line_ending" mapstructure:"line_ending"`
}

// DefaultTransformOptions returns the recommended defaults: passthrough
// values, blank lines skipped, loose width, "\n" terminators.
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{
		WidthPolicy: WidthPassthrough,
		BlankLines:  BlankSkip,
		LineEnding:  LineEndingLF,
	}
}

// Normalize fills zero values with defaults and rejects unknown enum values.
func (o TransformOptions) Normalize() (TransformOptions, error) {
	def := DefaultTransformOptions()
	if o.WidthPolicy == "" {
		o.WidthPolicy = def.WidthPolicy
	}
	if o.BlankLines == "" {
		o.BlankLines = def.BlankLines
	}
	if o.LineEnding == "" {
		o.LineEnding = def.LineEnding
	}
	switch o.WidthPolicy {
	case WidthPassthrough, WidthPad:
	default:
		return o, fmt.Errorf("unknown width policy %q (want passthrough or pad)", o.WidthPolicy)
	}
	switch o.BlankLines {
	case BlankSkip, BlankKeep:
	default:
		return o, fmt.Errorf("unknown blank line policy %q (want skip or keep)", o.BlankLines)
	}
	switch o.LineEnding {
	case LineEndingLF, LineEndingCRLF:
	default:
		return o, fmt.Errorf("unknown line ending %q (want lf or crlf)", o.LineEnding)
	}
	return o, nil
}

// ConversionConfig holds settings for a conversion run, as read from the
// config file, environment and flags.
type ConversionConfig struct {
	TransformOptions `yaml:",inline" mapstructure:",squash"`

	// Schema is the path of the schema file.
	Schema string `json:"schema" yaml:"schema" mapstructure:"schema"`

	// Dialect selects the schema syntax: line, structured or auto (by extension).
	Dialect Dialect `json:"dialect" yaml:"dialect" mapstructure:"dialect"`

	// Separator is inserted between output fields (default ",").
	Separator string `json:"separator" yaml:"separator" mapstructure:"separator"`

	// OutputSuffix is inserted before the input extension (default "_processed").
	OutputSuffix string `json:"output_suffix" yaml:"output_suffix" mapstructure:"output_suffix"`

	// SkipExisting leaves an existing output file untouched instead of
	// overwriting it.
	SkipExisting bool `json:"skip_existing" yaml:"skip_existing" mapstructure:"skip_existing"`
}

// ConversionStatus is the outcome of converting one input file.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// WithDefaults returns a copy of c with empty values replaced by defaults.
// Transform options are not validated here; see TransformOptions.Normalize.
func (c ConversionConfig) WithDefaults() ConversionConfig {
	if c.Dialect == "" {
		c.Dialect = DialectAuto
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.OutputSuffix == "" {
		c.OutputSuffix = DefaultOutputSuffix
	}
	return c
}
