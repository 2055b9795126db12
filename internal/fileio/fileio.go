// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fileio reads and writes whole text files through an afero.Fs and
// maps failures onto the fwconv error taxonomy. Every returned error is a
// *types.Error carrying the offending path.
package fileio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/fwconv/pkg/types"
)

const writeFlags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC

// ReadText loads the whole file at path. It does not reject empty files;
// callers decide whether empty content is an error.
func ReadText(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", &types.Error{Kind: types.ErrFileOpen, Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", &types.Error{Kind: types.ErrFileRead, Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &types.Error{Kind: types.ErrFileOpen, Path: path, Msg: "is a directory"}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &types.Error{Kind: types.ErrFileRead, Path: path, Err: err}
	}
	return string(data), nil
}

// WriteText creates or truncates path and writes content to it.
func WriteText(fs afero.Fs, path, content string) error {
	f, err := fs.OpenFile(path, writeFlags, 0o644)
	if err != nil {
		return &types.Error{Kind: types.ErrFileWrite, Path: path, Msg: "cannot create", Err: err}
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return &types.Error{Kind: types.ErrFileWrite, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &types.Error{Kind: types.ErrFileWrite, Path: path, Err: err}
	}
	return nil
}

// OutputPath derives the output file name for input by inserting suffix
// before the extension of the base name, or appending it when there is no
// extension: "data/in.txt" becomes "data/in_processed.txt". A leading dot
// (".hidden") does not start an extension.
func OutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = types.DefaultOutputSuffix
	}
	dir, base := filepath.Split(input)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)
	return dir + stem + suffix + ext
}
