package schema

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Accessors over the generic node trees the source parser produces. The
// normalizers work on ordered mappings, so plain map decoding is not enough.

// unwrap resolves document and alias indirection to the underlying node.
func unwrap(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

type mapEntry struct {
	key   string
	value *yaml.Node
}

// mappingEntries returns a mapping node's entries in document order.
func mappingEntries(n *yaml.Node) ([]mapEntry, bool) {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, false
	}
	entries := make([]mapEntry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := unwrap(n.Content[i])
		if k == nil || k.Kind != yaml.ScalarNode {
			continue
		}
		entries = append(entries, mapEntry{key: k.Value, value: n.Content[i+1]})
	}
	return entries, true
}

// child returns the value node for key, or nil when n is not a mapping or
// the key is absent.
func child(n *yaml.Node, key string) *yaml.Node {
	entries, ok := mappingEntries(n)
	if !ok {
		return nil
	}
	for _, e := range entries {
		if e.key == key {
			return e.value
		}
	}
	return nil
}

func sequenceItems(n *yaml.Node) ([]*yaml.Node, bool) {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, false
	}
	return n.Content, true
}

func scalarString(n *yaml.Node) (string, bool) {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

func scalarInt(n *yaml.Node) (int, bool) {
	s, ok := scalarString(n)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// stringMap decodes a mapping of scalars into a map with lowercased keys.
// Used for language-keyed tables, which are matched case-insensitively.
func stringMap(n *yaml.Node) map[string]string {
	entries, ok := mappingEntries(n)
	if !ok {
		return nil
	}
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		if v, ok := scalarString(e.value); ok {
			m[strings.ToLower(e.key)] = v
		}
	}
	return m
}
