// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// dialectNames are the --dialect spellings accepted by schema.ParseDialect.
var dialectNames = []string{"auto", "line", "structured", "csv", "json", "yaml"}

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnum(def string, allowed ...string) *enumValue {
	return &enumValue{value: def, allowed: allowed}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range e.allowed {
		if s == a {
			e.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
}

func (e *enumValue) Type() string { return "string" }

// decodeSeparator turns the spellings that are awkward to pass through a
// shell into the separator they stand for.
func decodeSeparator(s string) string {
	switch strings.ToLower(s) {
	case `\t`, "tab":
		return "\t"
	case "space":
		return " "
	case "pipe":
		return "|"
	case "semicolon":
		return ";"
	default:
		return s
	}
}
