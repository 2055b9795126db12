// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema parses field-width schema sources into types.Schema.
// Two dialects are supported behind the Parser interface: the line-oriented
// "name,width" format and a structured document with a fields list.
package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/fwconv/pkg/types"
)

// Parser turns schema source text into a Schema.
type Parser interface {
	// Parse returns the schema described by src, or an *types.Error.
	Parse(src string) (types.Schema, error)
}

// structuredExts lists file extensions that select the structured dialect
// when the dialect is auto.
var structuredExts = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Resolve maps DialectAuto to a concrete dialect using the extension of
// path. Concrete dialects are returned unchanged.
func Resolve(d types.Dialect, path string) types.Dialect {
	if d != types.DialectAuto && d != "" {
		return d
	}
	if structuredExts[strings.ToLower(filepath.Ext(path))] {
		return types.DialectStructured
	}
	return types.DialectLine
}

// ForDialect returns the parser for a concrete dialect.
func ForDialect(d types.Dialect) (Parser, error) {
	switch d {
	case types.DialectLine:
		return LineParser{}, nil
	case types.DialectStructured:
		return StructuredParser{}, nil
	case types.DialectAuto, "":
		return nil, fmt.Errorf("dialect %q must be resolved against a file name first", types.DialectAuto)
	default:
		return nil, fmt.Errorf("unknown schema dialect %q (want line, structured or auto)", d)
	}
}

// Parse parses src with the parser for dialect d.
func Parse(src string, d types.Dialect) (types.Schema, error) {
	p, err := ForDialect(d)
	if err != nil {
		return nil, err
	}
	return p.Parse(src)
}

// ParseDialect parses a dialect name given on the command line or in config.
func ParseDialect(s string) (types.Dialect, error) {
	switch d := types.Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return types.DialectAuto, nil
	case types.DialectLine, types.DialectStructured, types.DialectAuto:
		return d, nil
	case "csv":
		return types.DialectLine, nil
	case "json", "yaml":
		return types.DialectStructured, nil
	default:
		return "", fmt.Errorf("unknown schema dialect %q (want line, structured or auto)", s)
	}
}
