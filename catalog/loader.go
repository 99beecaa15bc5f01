package catalog

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Load reads the catalog document at path from fsys and resolves it.
func Load(fsys fs.FS, path string) (Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Catalog{}, fmt.Errorf("%w: failed to read %s: %w", ErrCatalogUnavailable, path, err)
	}

	records, err := Decode(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}

	return FromRecords(records)
}

// Decode parses a catalog document. Documents are YAML (JSON is accepted as
// the subset it is) and look like:
//
//	attrs:
//	  xmlns: http://www.w3.org/2000/svg
//	  stroke-width: 2
//	icons:
//	  arrow-left:
//	    contents: <line x1="19" y1="12" x2="5" y2="12"></line>
//	    attrs:
//	      fill: none
//	  x: <line x1="18" y1="6" x2="6" y2="18"></line>
//
// The top-level attrs apply to every icon; an icon's own attrs replace a
// default in place or are appended after the defaults. An icon given as a
// plain string has only contents. Mapping order is preserved throughout.
func Decode(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog: %w", ErrCatalogUnavailable, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty catalog document", ErrCatalogUnavailable)
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, malformed(root, "catalog root must be a mapping")
	}

	var (
		defaults []Attr
		icons    *yaml.Node
	)
	for i := 0; i < len(root.Content); i += 2 {
		key, value := root.Content[i], resolveAlias(root.Content[i+1])
		switch key.Value {
		case "attrs":
			attrs, err := decodeAttrs(value, true)
			if err != nil {
				return nil, err
			}
			defaults = attrs
		case "icons":
			icons = value
		default:
			return nil, malformed(key, "unknown top-level key %q", key.Value)
		}
	}

	if icons == nil {
		return nil, fmt.Errorf("%w: catalog has no icons section", ErrCatalogUnavailable)
	}
	if icons.Kind != yaml.MappingNode {
		return nil, malformed(icons, "icons must be a mapping of name to icon")
	}

	records := make([]Record, 0, len(icons.Content)/2)
	for i := 0; i < len(icons.Content); i += 2 {
		rec, err := decodeIcon(icons.Content[i], resolveAlias(icons.Content[i+1]), defaults)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func decodeIcon(key, value *yaml.Node, defaults []Attr) (Record, error) {
	if key.Kind != yaml.ScalarNode || key.Value == "" {
		return Record{}, malformed(key, "icon name must be a non-empty string")
	}

	rec := Record{RawName: key.Value}

	switch value.Kind {
	case yaml.ScalarNode:
		rec.Contents = value.Value
		rec.Attrs = mergeAttrs(defaults, nil)
		return rec, nil
	case yaml.MappingNode:
	default:
		return Record{}, malformed(value, "icon %q must be a string or a mapping", key.Value)
	}

	var own []Attr
	for i := 0; i < len(value.Content); i += 2 {
		field, v := value.Content[i], resolveAlias(value.Content[i+1])
		switch field.Value {
		case "contents":
			if v.Kind != yaml.ScalarNode {
				return Record{}, malformed(v, "icon %q: contents must be a string", key.Value)
			}
			rec.Contents = v.Value
		case "attrs":
			attrs, err := decodeAttrs(v, true)
			if err != nil {
				return Record{}, fmt.Errorf("icon %q: %w", key.Value, err)
			}
			own = attrs
		default:
			return Record{}, malformed(field, "icon %q: unknown field %q", key.Value, field.Value)
		}
	}

	rec.Attrs = mergeAttrs(defaults, own)
	return rec, nil
}

// decodeAttrs reads an ordered attribute mapping. Nested mappings are style
// records and are only allowed one level deep.
func decodeAttrs(n *yaml.Node, allowStyle bool) ([]Attr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, malformed(n, "attrs must be a mapping")
	}

	attrs := make([]Attr, 0, len(n.Content)/2)
	seen := make(map[string]bool, len(n.Content)/2)

	for i := 0; i < len(n.Content); i += 2 {
		key, value := n.Content[i], resolveAlias(n.Content[i+1])
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, malformed(key, "attribute name must be a non-empty string")
		}
		if seen[key.Value] {
			return nil, malformed(key, "attribute %q defined more than once", key.Value)
		}
		seen[key.Value] = true

		switch {
		case value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null":
			return nil, malformed(value, "attribute %q has no value", key.Value)
		case value.Kind == yaml.ScalarNode:
			attrs = append(attrs, Attr{Key: key.Value, Value: value.Value})
		case value.Kind == yaml.MappingNode && allowStyle:
			style, err := decodeAttrs(value, false)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, Attr{Key: key.Value, Style: style})
		default:
			return nil, malformed(value, "attribute %q must be a string or a style mapping", key.Value)
		}
	}

	return attrs, nil
}

func mergeAttrs(defaults, own []Attr) []Attr {
	merged := make([]Attr, len(defaults), len(defaults)+len(own))
	copy(merged, defaults)

	for _, attr := range own {
		replaced := false
		for i := range merged {
			if merged[i].Key == attr.Key {
				merged[i] = attr
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, attr)
		}
	}

	return merged
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func malformed(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrCatalogUnavailable, n.Line, fmt.Sprintf(format, args...))
}
