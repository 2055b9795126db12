// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lines splits text into lines under any newline convention.
package lines

import "strings"

// Split breaks text on "\r\n", "\n" or a lone "\r". Terminators are not
// included in the result. A terminator at the very end of text does not
// produce a trailing empty line, so "a\nb\n" and "a\nb" both yield [a b].
// Empty text yields no lines.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			out = append(out, text[start:i])
			start = i + 1
		case '\r':
			out = append(out, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// Join is the inverse of Split for a chosen terminator: every line,
// including the last, is followed by term.
func Join(ls []string, term string) string {
	if len(ls) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l)
		b.WriteString(term)
	}
	return b.String()
}
