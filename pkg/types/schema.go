// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the fwconv pipeline:
// field-width schemas, transform options, configuration, and the error
// taxonomy shared by the schema parser, the record transformer and the
// file orchestration layer.
package types

import "fmt"

// Dialect identifies the syntax of a schema source.
type Dialect string

const (
	// DialectLine is the line-oriented "name,width" syntax with # comments.
	DialectLine Dialect = "line"

	// DialectStructured is a document with a top-level fields list of
	// {name, width} objects, written as JSON or YAML.
	DialectStructured Dialect = "structured"

	// DialectAuto selects line or structured from the schema file extension.
	DialectAuto Dialect = "auto"
)

// MaxFieldWidth is the widest field a schema may declare, in characters.
const MaxFieldWidth = 1 << 20

// FieldSpec describes one positional field of a fixed-width record.
type FieldSpec struct {
	// Name labels the field. Duplicate names are allowed.
	Name string `json:"name" yaml:"name"`

	// Width is the number of characters the field occupies, 1..MaxFieldWidth.
	Width int `json:"width" yaml:"width"`
}

// Schema is the ordered list of fields consumed left-to-right from each
// input line. A valid schema has at least one field.
type Schema []FieldSpec

// Validate reports whether s can drive a transform.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return &Error{Kind: ErrSchemaSectionNotFound}
	}
	for i, f := range s {
		if f.Name == "" {
			return &Error{Kind: ErrInvalidFieldFormat, Msg: fmt.Sprintf("field %d has no name", i+1)}
		}
		if f.Width <= 0 || f.Width > MaxFieldWidth {
			return &Error{Kind: ErrInvalidSizeValue, Field: f.Name, Msg: fmt.Sprintf("width %d outside 1..%d", f.Width, MaxFieldWidth)}
		}
	}
	return nil
}

// TotalWidth returns the sum of all field widths.
func (s Schema) TotalWidth() int {
	total := 0
	for _, f := range s {
		total += f.Width
	}
	return total
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}
