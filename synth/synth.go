// Package synth produces the source of one icon component and its type
// declaration.
package synth

import (
	"fmt"
	"strings"

	"github.com/cpcf/iconforge/catalog"
	"github.com/cpcf/iconforge/format"
	"github.com/cpcf/iconforge/jslit"
	"github.com/cpcf/iconforge/template"
)

// Synthesizer fills a validated template with icon data. It holds no mutable
// state and may be shared between goroutines.
type Synthesizer struct {
	tpl *template.Template
}

func New(tpl *template.Template) *Synthesizer {
	return &Synthesizer{tpl: tpl}
}

// Component returns the component source for icon in module format f.
func (s *Synthesizer) Component(icon catalog.Icon, f format.Format) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("icon %s: unsupported module format %v", icon.Name, f)
	}

	attrs, err := AttrsLiteral(icon.Attrs)
	if err != nil {
		return "", fmt.Errorf("icon %s: attrs: %w", icon.Name, err)
	}

	contents, err := jslit.Quote(icon.Contents)
	if err != nil {
		return "", fmt.Errorf("icon %s: contents: %w", icon.Name, err)
	}

	r := strings.NewReplacer(
		template.AttrsMarker, attrs,
		template.ContentMarker, contents,
	)
	return r.Replace(s.tpl.Body(f)), nil
}

// Declaration returns the TypeScript declaration of icon's component. The
// same text serves both module formats.
func (s *Synthesizer) Declaration(icon catalog.Icon) string {
	return Declaration(icon.Name)
}

// Declaration returns the TypeScript declaration of a Vue component named name.
func Declaration(name string) string {
	lines := []string{
		"import type { VNode, RendererNode, RendererElement } from 'vue';",
		fmt.Sprintf("declare const %s: { setup(): () => VNode<RendererNode, RendererElement, Record<string, any>>; }", name),
		fmt.Sprintf("export default %s;", name),
	}
	return strings.Join(lines, "\n") + "\n"
}

// AttrsLiteral renders attrs as an object spread, e.g.
// ...{'fill':'none','style':{'color':'red'}}. Attribute order is kept.
func AttrsLiteral(attrs []catalog.Attr) (string, error) {
	obj, err := objectLiteral(attrs)
	if err != nil {
		return "", err
	}
	return "..." + obj, nil
}

func objectLiteral(attrs []catalog.Attr) (string, error) {
	var b strings.Builder
	b.WriteByte('{')

	for i, attr := range attrs {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := jslit.Quote(attr.Key)
		if err != nil {
			return "", fmt.Errorf("key %q: %w", attr.Key, err)
		}
		b.WriteString(key)
		b.WriteByte(':')

		if attr.IsStyle() {
			style, err := objectLiteral(attr.Style)
			if err != nil {
				return "", fmt.Errorf("%s: %w", attr.Key, err)
			}
			b.WriteString(style)
			continue
		}

		value, err := jslit.Quote(attr.Value)
		if err != nil {
			return "", fmt.Errorf("value of %q: %w", attr.Key, err)
		}
		b.WriteString(value)
	}

	b.WriteByte('}')
	return b.String(), nil
}
