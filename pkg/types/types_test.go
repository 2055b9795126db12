// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: ErrSchemaSectionNotFound},
			want: "E100: schema section not found",
		},
		{
			name: "full context",
			err: &Error{
				Kind:  ErrInvalidSizeValue,
				Path:  "layout.csv",
				Line:  4,
				Field: "amount",
				Msg:   `"x" is not an integer`,
			},
			want: `E103: invalid size value "layout.csv" on line 4 (field "amount"): "x" is not an integer`,
		},
		{
			name: "cause",
			err:  &Error{Kind: ErrFileRead, Path: "in.txt", Err: io.ErrUnexpectedEOF},
			want: `E107: cannot read file "in.txt": unexpected EOF`,
		},
		{
			name: "no kind",
			err:  &Error{Msg: "odd"},
			want: "error: odd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	e := &Error{Kind: ErrFileOpen, Path: "missing.txt", Err: io.EOF}
	wrapped := fmt.Errorf("error parsing configuration: %w", e)

	assert.ErrorIs(t, wrapped, ErrFileOpen)
	assert.ErrorIs(t, wrapped, io.EOF)
	assert.NotErrorIs(t, wrapped, ErrFileRead)
	assert.Equal(t, ErrFileOpen, KindOf(wrapped))
	assert.Nil(t, KindOf(errors.New("plain")))
}

func TestError_Codes(t *testing.T) {
	codes := map[error]string{
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
	for kind, code := range codes {
		assert.Equal(t, code, (&Error{Kind: kind}).Code(), kind.Error())
	}
	assert.Empty(t, (&Error{Kind: io.EOF}).Code())
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name     string
		schema   Schema
		wantKind error
	}{
		{name: "valid", schema: Schema{{Name: "a", Width: 1}, {Name: "a", Width: 3}}},
		{name: "empty", schema: nil, wantKind: ErrSchemaSectionNotFound},
		{name: "no name", schema: Schema{{Width: 2}}, wantKind: ErrInvalidFieldFormat},
		{name: "zero width", schema: Schema{{Name: "a", Width: 0}}, wantKind: ErrInvalidSizeValue},
		{name: "negative width", schema: Schema{{Name: "a", Width: -1}}, wantKind: ErrInvalidSizeValue},
		{name: "width at maximum", schema: Schema{{Name: "a", Width: MaxFieldWidth}}},
		{name: "width above maximum", schema: Schema{{Name: "a", Width: MaxFieldWidth + 1}}, wantKind: ErrInvalidSizeValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestSchema_Helpers(t *testing.T) {
	s := Schema{{Name: "id", Width: 3}, {Name: "name", Width: 5}}
	assert.Equal(t, 8, s.TotalWidth())
	assert.Equal(t, []string{"id", "name"}, s.Names())
	assert.Empty(t, Schema(nil).Names())
}

func TestTransformOptions_Normalize(t *testing.T) {
	got, err := TransformOptions{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, DefaultTransformOptions(), got)

	got, err = TransformOptions{WidthPolicy: WidthPad, BlankLines: BlankKeep, StrictWidth: true, LineEnding: LineEndingCRLF}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, WidthPad, got.WidthPolicy)
	assert.True(t, got.StrictWidth)

	_, err = TransformOptions{WidthPolicy: "center"}.Normalize()
	assert.ErrorContains(t, err, "unknown width policy")
	_, err = TransformOptions{BlankLines: "drop"}.Normalize()
	assert.ErrorContains(t, err, "unknown blank line policy")
	_, err = TransformOptions{LineEnding: "cr"}.Normalize()
	assert.ErrorContains(t, err, "unknown line ending")
}

func TestLineEnding_Terminator(t *testing.T) {
	assert.Equal(t, "\n", LineEndingLF.Terminator())
	assert.Equal(t, "\r\n", LineEndingCRLF.Terminator())
	assert.Equal(t, "\n", LineEnding("").Terminator())
}

func TestConversionConfig_WithDefaults(t *testing.T) {
	got := ConversionConfig{}.WithDefaults()
	assert.Equal(t, DialectAuto, got.Dialect)
	assert.Equal(t, DefaultSeparator, got.Separator)
	assert.Equal(t, DefaultOutputSuffix, got.OutputSuffix)

	got = ConversionConfig{Dialect: DialectLine, Separator: "\t", OutputSuffix: ".csv"}.WithDefaults()
	assert.Equal(t, DialectLine, got.Dialect)
	assert.Equal(t, "\t", got.Separator)
	assert.Equal(t, ".csv", got.OutputSuffix)
}
