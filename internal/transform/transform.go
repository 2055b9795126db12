// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform slices fixed-width records into delimited records.
//
// Each input line is consumed left to right in schema order. A field takes
// up to Width characters from the cursor; short lines yield short or empty
// trailing fields unless StrictWidth is set. Values are trimmed of
// surrounding whitespace, optionally truncated or padded back to the field
// width, and joined with the separator. Characters are Unicode code points;
// a byte that is not valid UTF-8 counts as one character and is copied
// through unchanged.
package transform

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/fwconv/internal/lines"
	"github.com/pdiddy/fwconv/pkg/types"
)

// trimSet is the whitespace removed from both ends of every extracted value.
const trimSet = " \t\n\r\f\v"

// Transform converts input into delimited text, one output line per
// processed input line. Options are normalized first, so a zero
// TransformOptions means the defaults. The first failure aborts the run.
func Transform(schema types.Schema, separator string, input string, opts types.TransformOptions) (string, error) {
	if err := schema.Validate(); err != nil {
		return "", err
	}
	opts, err := opts.Normalize()
	if err != nil {
		return "", err
	}
	term := opts.LineEnding.Terminator()

	var b strings.Builder
	b.Grow(len(input) + len(input)/4)
	for i, line := range lines.Split(input) {
		if line == "" {
			if opts.BlankLines == types.BlankKeep {
				b.WriteString(term)
			}
			continue
		}
		values, err := Fields(schema, line, opts)
		if err != nil {
			var e *types.Error
			if errors.As(err, &e) {
				e.Line = i + 1
			}
			return "", err
		}
		writeJoined(&b, values, separator)
		b.WriteString(term)
	}
	return b.String(), nil
}

// Fields extracts the values of one record in schema order, applying trim,
// the width policy and, in strict mode, the remaining-length check. The
// returned error, if any, has no line number set.
func Fields(schema types.Schema, line string, opts types.TransformOptions) ([]string, error) {
	rest := line
	values := make([]string, len(schema))
	for i, f := range schema {
		raw, tail, n := take(rest, f.Width)
		if opts.StrictWidth && n < f.Width {
			return nil, &types.Error{
				Kind:  types.ErrFieldWidthExceedsLine,
				Field: f.Name,
				Msg:   fmt.Sprintf("width %d, %d characters left", f.Width, n),
			}
		}
		value := strings.Trim(raw, trimSet)
		rest = tail

		if opts.WidthPolicy == types.WidthPad {
			value = fit(value, f.Width)
		}
		values[i] = value
	}
	return values, nil
}

// fit truncates s to width characters or right-pads it with spaces.
func fit(s string, width int) string {
	n := utf8.RuneCountInString(s)
	switch {
	case n > width:
		head, _, _ := take(s, width)
		return head
	case n < width:
		return s + strings.Repeat(" ", width-n)
	default:
		return s
	}
}

// take splits off the first n characters of s and reports how many it got.
// It slices at byte offsets, so invalid UTF-8 survives intact.
func take(s string, n int) (head, rest string, taken int) {
	i := 0
	for taken < n && i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		taken++
	}
	return s[:i], s[i:], taken
}

func writeJoined(b *strings.Builder, values []string, sep string) {
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(v)
	}
}
