// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/fwconv/internal/lines"
	"github.com/pdiddy/fwconv/pkg/types"
)

// LineParser parses the line-oriented dialect:
//
//	# comment
//	id,3
//	name, 20
//
// Each non-blank, non-comment line holds exactly one name and one positive
// integer width separated by a comma. Surrounding whitespace is ignored.
type LineParser struct{}

// Parse implements Parser.
func (LineParser) Parse(src string) (types.Schema, error) {
	var fields types.Schema
	for i, raw := range lines.Split(src) {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f, err := parseFieldLine(line, i+1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, &types.Error{Kind: types.ErrSchemaSectionNotFound, Msg: "no field definitions"}
	}
	return fields, nil
}

func parseFieldLine(line string, lineNum int) (types.FieldSpec, error) {
	name, sizeStr, ok := strings.Cut(line, ",")
	if !ok {
		return types.FieldSpec{}, &types.Error{
			Kind: types.ErrInvalidSchemaFormat,
			Line: lineNum,
			Msg:  fmt.Sprintf("expected name,width but got %q", line),
		}
	}
	name = strings.TrimSpace(name)
	sizeStr = strings.TrimSpace(sizeStr)

	if name == "" {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidFieldFormat, Line: lineNum, Msg: "missing field name"}
	}
	if sizeStr == "" {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidFieldFormat, Line: lineNum, Field: name, Msg: "missing width"}
	}
	if strings.Contains(sizeStr, ",") {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidFieldFormat, Line: lineNum, Field: name, Msg: "too many values"}
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidSizeValue, Line: lineNum, Field: name, Msg: fmt.Sprintf("%q is not an integer", sizeStr)}
	}
	if size <= 0 {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidSizeValue, Line: lineNum, Field: name, Msg: fmt.Sprintf("width must be positive, got %d", size)}
	}
	if size > types.MaxFieldWidth {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidSizeValue, Line: lineNum, Field: name, Msg: fmt.Sprintf("width %d exceeds the maximum of %d", size, types.MaxFieldWidth)}
	}
	return types.FieldSpec{Name: name, Width: size}, nil
}

// FormatLine renders sch in the line dialect, one "name,width" pair per
// line. It fails with ErrInvalidFieldFormat for a name LineParser would not
// read back unchanged: one holding a comma or line break, starting with #,
// or with surrounding whitespace.
func FormatLine(sch types.Schema) (string, error) {
	if err := sch.Validate(); err != nil {
		return "", err
	}
	rows := make([]string, len(sch))
	for i, f := range sch {
		if reason := lineUnsafe(f.Name); reason != "" {
			return "", &types.Error{
				Kind:  types.ErrInvalidFieldFormat,
				Field: f.Name,
				Msg:   "name cannot be written in the line dialect: " + reason,
			}
		}
		rows[i] = f.Name + "," + strconv.Itoa(f.Width)
	}
	return lines.Join(rows, "\n"), nil
}

func lineUnsafe(name string) string {
	switch {
	case strings.ContainsAny(name, ",\r\n"):
		return "contains a comma or line break"
	case strings.HasPrefix(name, "#"):
		return "starts with #"
	case strings.TrimSpace(name) != name:
		return "has leading or trailing whitespace"
	default:
		return ""
	}
}
