// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fwconv/pkg/types"
)

// StructuredParser parses a document with a top-level fields list:
//
//	{"fields": [{"name": "id", "width": 3}, {"name": "name", "width": 20}]}
//
// The document is read with a YAML 1.2 decoder, so the same structure
// written as YAML is accepted too. Widths must be positive integers.
type StructuredParser struct{}

// Parse implements Parser.
func (StructuredParser) Parse(src string) (types.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, &types.Error{Kind: types.ErrInvalidSchemaFormat, Msg: "malformed document", Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &types.Error{Kind: types.ErrInvalidSchemaFormat, Msg: "empty document"}
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, &types.Error{Kind: types.ErrInvalidSchemaFormat, Line: root.Line, Msg: "document must be an object"}
	}

	list := lookup(root, "fields")
	if list == nil || list.Kind != yaml.SequenceNode {
		line := root.Line
		if list != nil {
			line = list.Line
		}
		return nil, &types.Error{Kind: types.ErrInvalidSchemaFormat, Line: line, Msg: "missing or invalid fields list"}
	}

	fields := make(types.Schema, 0, len(list.Content))
	for _, el := range list.Content {
		f, err := decodeField(resolve(el))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, &types.Error{Kind: types.ErrSchemaSectionNotFound, Line: list.Line, Msg: "fields list is empty"}
	}
	return fields, nil
}

func decodeField(n *yaml.Node) (types.FieldSpec, error) {
	if n.Kind != yaml.MappingNode {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidFieldFormat, Line: n.Line, Msg: "field must contain name and width"}
	}
	nameNode, widthNode := lookup(n, "name"), lookup(n, "width")
	if nameNode == nil || widthNode == nil {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidFieldFormat, Line: n.Line, Msg: "field must contain name and width"}
	}

	if nameNode.Kind != yaml.ScalarNode || nameNode.ShortTag() != "!!str" || nameNode.Value == "" {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidFieldFormat, Line: nameNode.Line, Msg: "name must be a non-empty string"}
	}
	name := nameNode.Value

	if widthNode.Kind != yaml.ScalarNode || widthNode.ShortTag() != "!!int" {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidSizeValue, Line: widthNode.Line, Field: name, Msg: fmt.Sprintf("width %q is not an integer", widthNode.Value)}
	}
	var width int
	if err := widthNode.Decode(&width); err != nil {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidSizeValue, Line: widthNode.Line, Field: name, Err: err}
	}
	if width <= 0 {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidSizeValue, Line: widthNode.Line, Field: name, Msg: fmt.Sprintf("width must be positive, got %d", width)}
	}
	if width > types.MaxFieldWidth {
		return types.FieldSpec{}, &types.Error{Kind: types.ErrInvalidSizeValue, Line: widthNode.Line, Field: name, Msg: fmt.Sprintf("width %d exceeds the maximum of %d", width, types.MaxFieldWidth)}
	}
	return types.FieldSpec{Name: name, Width: width}, nil
}

// lookup returns the value node for key in a mapping node, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if k := resolve(m.Content[i]); k.Kind == yaml.ScalarNode && k.Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
