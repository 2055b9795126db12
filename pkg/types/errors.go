// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error produced by the schema parser, the transformer or
// the file layer is an *Error whose Kind is one of these sentinels, so callers
// can test with errors.Is(err, types.ErrInvalidSizeValue).
var (
	ErrSchemaSectionNotFound = errors.New("schema section not found")
	ErrInvalidSchemaFormat   = errors.New("invalid schema format")
	ErrInvalidFieldFormat    = errors.New("invalid field format")
	ErrInvalidSizeValue      = errors.New("invalid size value")
	ErrFieldWidthExceedsLine = errors.New("field width exceeds line length")
	ErrFileOpen              = errors.New("cannot open file")
	ErrFileRead              = errors.New("cannot read file")
	ErrFileWrite             = errors.New("cannot write file")
	ErrEmptyInput            = errors.New("empty input")
)

// errorCodes keeps the numbering used by the legacy desktop tool so users
// can match messages against its documentation.
var errorCodes = map[error]string{
	ErrSchemaSectionNotFound: "E100",
	ErrInvalidSchemaFormat:   "E101",
	ErrInvalidFieldFormat:    "E102",
	ErrInvalidSizeValue:      "E103",
	ErrFieldWidthExceedsLine: "E104",
	ErrFileOpen:              "E105",
	ErrEmptyInput:            "E106",
	ErrFileRead:              "E107",
	ErrFileWrite:             "E109",
}

// Error carries an error kind plus whatever location context is known.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Path is the file involved, if any.
	Path string

	// Line is the 1-based line number in the schema or input source; 0 if unknown.
	Line int

	// Field is the schema field name involved, if any.
	Field string

	// Msg adds free-form detail.
	Msg string

	// Err is the underlying cause, if any.
	Err error
}

// Code returns the legacy error code for the kind, or "" if it has none.
func (e *Error) Code() string {
	return errorCodes[e.Kind]
}

func (e *Error) Error() string {
	var b strings.Builder
	if code := e.Code(); code != "" {
		b.WriteString(code)
		b.WriteString(": ")
	}
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("error")
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " %q", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %q)", e.Field)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is matches the error kind, so errors.Is works against the sentinels.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind sentinel of the first *Error in err's chain, or nil.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
