// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fwconv/pkg/types"
)

var idName = types.Schema{{Name: "id", Width: 3}, {Name: "name", Width: 5}}

func TestTransform(t *testing.T) {
	pad := types.TransformOptions{WidthPolicy: types.WidthPad}

	tests := []struct {
		name   string
		schema types.Schema
		sep    string
		input  string
		opts   types.TransformOptions
		want   string
	}{
		{
			name:   "exact fit passthrough",
			schema: idName,
			sep:    ",",
			input:  "001Alice",
			want:   "001,Alice\n",
		},
		{
			name:   "exact fit padded",
			schema: idName,
			sep:    ",",
			input:  "001Alice",
			opts:   pad,
			want:   "001,Alice\n",
		},
		{
			name:   "short line passthrough",
			schema: idName,
			sep:    ",",
			input:  "12Bo",
			want:   "12B,o\n",
		},
		{
			name:   "short values padded to width",
			schema: idName,
			sep:    ",",
			input:  "12 Bo",
			opts:   pad,
			want:   "12 ,Bo   \n",
		},
		{
			name:   "values are trimmed",
			schema: idName,
			sep:    "|",
			input:  " 7 \tBob \r",
			want:   "7|Bob\n",
		},
		{
			name:   "ragged line yields empty trailing field",
			schema: types.Schema{{Name: "a", Width: 3}, {Name: "b", Width: 3}},
			sep:    ",",
			input:  "12",
			want:   "12,\n",
		},
		{
			name:   "characters beyond schema are dropped",
			schema: types.Schema{{Name: "a", Width: 2}},
			sep:    ",",
			input:  "abcdef",
			want:   "ab\n",
		},
		{
			name:   "multi character separator",
			schema: idName,
			sep:    " :: ",
			input:  "001Alice",
			want:   "001 :: Alice\n",
		},
		{
			name:   "empty separator joins directly",
			schema: idName,
			sep:    "",
			input:  "001Alice",
			want:   "001Alice\n",
		},
		{
			name:   "blank lines skipped by default",
			schema: idName,
			sep:    ",",
			input:  "001Alice\n\n002Bruno\n",
			want:   "001,Alice\n002,Bruno\n",
		},
		{
			name:   "blank lines kept on request",
			schema: idName,
			sep:    ",",
			input:  "001Alice\r\n\r\n002Bruno",
			opts:   types.TransformOptions{BlankLines: types.BlankKeep},
			want:   "001,Alice\n\n002,Bruno\n",
		},
		{
			name:   "crlf output",
			schema: idName,
			sep:    ",",
			input:  "001Alice\n002Bruno",
			opts:   types.TransformOptions{LineEnding: types.LineEndingCRLF},
			want:   "001,Alice\r\n002,Bruno\r\n",
		},
		{
			name:   "multibyte characters count once",
			schema: types.Schema{{Name: "city", Width: 6}, {Name: "code", Width: 2}},
			sep:    ";",
			input:  "Zürich42",
			want:   "Zürich;42\n",
		},
		{
			name:   "padding truncates nothing after trim",
			schema: types.Schema{{Name: "a", Width: 4}},
			sep:    ",",
			input:  "ab  ",
			opts:   pad,
			want:   "ab  \n",
		},
		{
			name:   "empty input",
			schema: idName,
			sep:    ",",
			input:  "",
			want:   "",
		},
		{
			name:   "whitespace only line is not blank",
			schema: idName,
			sep:    ",",
			input:  "        ",
			want:   ",\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(tt.schema, tt.sep, tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransform_Strict(t *testing.T) {
	schema := types.Schema{{Name: "a", Width: 3}, {Name: "b", Width: 3}}
	opts := types.TransformOptions{StrictWidth: true}

	got, err := Transform(schema, ",", "abcdef\n123456\n", opts)
	require.NoError(t, err)
	assert.Equal(t, "abc,def\n123,456\n", got)

	_, err = Transform(schema, ",", "abcdef\n\n12", opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrFieldWidthExceedsLine)

	var e *types.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 3, e.Line)
	assert.Equal(t, "a", e.Field)
}

func TestTransform_LooseTakesWhatRemains(t *testing.T) {
	schema := types.Schema{{Name: "a", Width: 3}, {Name: "b", Width: 3}}
	values, err := Fields(schema, "12", types.TransformOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"12", ""}, values)
}

func TestTransform_OutputLineCount(t *testing.T) {
	input := "001Alice\n\n002Bruno\n   \n\n003Carla\n"
	got, err := Transform(idName, ",", input, types.TransformOptions{})
	require.NoError(t, err)

	nonBlank := 0
	for _, l := range strings.Split(input, "\n") {
		if l != "" {
			nonBlank++
		}
	}
	assert.Equal(t, nonBlank, strings.Count(got, "\n"))
}

func TestTransform_Deterministic(t *testing.T) {
	input := strings.Repeat("001Alice\n 42 Bob \n\n", 50)
	opts := types.TransformOptions{WidthPolicy: types.WidthPad, LineEnding: types.LineEndingCRLF}

	first, err := Transform(idName, "\t", input, opts)
	require.NoError(t, err)
	second, err := Transform(idName, "\t", input, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTransform_InvalidArguments(t *testing.T) {
	_, err := Transform(nil, ",", "abc", types.TransformOptions{})
	assert.ErrorIs(t, err, types.ErrSchemaSectionNotFound)

	_, err = Transform(types.Schema{{Name: "a", Width: 0}}, ",", "abc", types.TransformOptions{})
	assert.ErrorIs(t, err, types.ErrInvalidSizeValue)

	huge := types.Schema{{Name: "a", Width: types.MaxFieldWidth + 1}}
	_, err = Transform(huge, ",", "abc", types.TransformOptions{WidthPolicy: types.WidthPad})
	assert.ErrorIs(t, err, types.ErrInvalidSizeValue)

	_, err = Transform(idName, ",", "abc", types.TransformOptions{WidthPolicy: "center"})
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", fit("ab", 4))
	assert.Equal(t, "abc", fit("abcdef", 3))
	assert.Equal(t, "äö", fit("äöü", 2))
	assert.Equal(t, "abc", fit("abc", 3))
	assert.Equal(t, "\xe9\xe9", fit("\xe9\xe9\xe9", 2))
}

func TestTransform_InvalidUTF8PassesThrough(t *testing.T) {
	schema := types.Schema{{Name: "id", Width: 2}, {Name: "name", Width: 4}}

	got, err := Transform(schema, ",", "01Jos\xe9", types.TransformOptions{})
	require.NoError(t, err)
	assert.Equal(t, "01,Jos\xe9\n", got)

	got, err = Transform(schema, ",", "\xe9\xe9Jos\xe9X", types.TransformOptions{StrictWidth: true})
	require.NoError(t, err)
	assert.Equal(t, "\xe9\xe9,Jos\xe9\n", got, "each invalid byte is one character")

	got, err = Transform(types.Schema{{Name: "name", Width: 5}}, ",", "Jos\xe9", types.TransformOptions{WidthPolicy: types.WidthPad})
	require.NoError(t, err)
	assert.Equal(t, "Jos\xe9 \n", got)
}

func TestTake(t *testing.T) {
	head, rest, n := take("äb\xffcd", 3)
	assert.Equal(t, "äb\xff", head)
	assert.Equal(t, "cd", rest)
	assert.Equal(t, 3, n)

	head, rest, n = take("ab", 5)
	assert.Equal(t, "ab", head)
	assert.Empty(t, rest)
	assert.Equal(t, 2, n)
}
