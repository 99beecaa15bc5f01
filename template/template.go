// Package template validates component templates and prepares one body per
// module format.
//
// A template is JavaScript source in ES module form. It must contain exactly
// one named static import, exactly one default export, and each of the
// AttrsMarker and ContentMarker placeholders exactly once. The CommonJS body is
// derived from it when the template is parsed, so per-icon synthesis only
// substitutes markers.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"

	"github.com/cpcf/iconforge/format"
	"github.com/cpcf/iconforge/jslit"
)

const (
	// AttrsMarker is replaced by the icon's root element attributes.
	AttrsMarker = "ATTRS"
	// ContentMarker is replaced by the icon's markup as a string literal.
	ContentMarker = "CONTENT"
)

// ErrTemplateMalformed is returned when a template breaks the contract above.
var ErrTemplateMalformed = errors.New("template malformed")

var (
	importStmtRe    = regexp.MustCompile(`(?m)^[ \t]*import[\s{]`)
	namedImportRe   = regexp.MustCompile(`import\s*\{\s*([^}]*?)\s*\}\s*from\s*(?:'([^'\n]*)'|"([^"\n]*)")`)
	exportDefaultRe = regexp.MustCompile(`\bexport\s+default\b`)
	bindingRe       = regexp.MustCompile(`^([A-Za-z_$][\w$]*)(?:\s+as\s+([A-Za-z_$][\w$]*))?$`)
)

// Binding is one name of the template's import clause.
type Binding struct {
	Name  string
	Alias string
}

// Local is the identifier the binding introduces into the module scope.
func (b Binding) Local() string {
	if b.Alias != "" {
		return b.Alias
	}
	return b.Name
}

// Import is the template's single named import.
type Import struct {
	Bindings []Binding
	Module   string
}

// Require renders the import as a CommonJS destructuring require:
// import { a, b as c } from 'm' becomes const { a, b: c } = require('m').
func (imp Import) Require() (string, error) {
	names := make([]string, len(imp.Bindings))
	for i, b := range imp.Bindings {
		if b.Alias != "" {
			names[i] = b.Name + ": " + b.Alias
		} else {
			names[i] = b.Name
		}
	}

	module, err := jslit.Quote(imp.Module)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("const { %s } = require(%s)", strings.Join(names, ", "), module), nil
}

// Template is a validated component template. It is immutable and safe for
// concurrent use.
type Template struct {
	source string
	imp    Import
	esm    string
	cjs    string
}

// Load reads and parses the template at path.
func Load(fsys fs.FS, path string) (*Template, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tpl, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tpl, nil
}

// Parse validates text and precomputes the per-format bodies.
func Parse(text string) (*Template, error) {
	for _, marker := range []string{AttrsMarker, ContentMarker} {
		if n := strings.Count(text, marker); n != 1 {
			return nil, fmt.Errorf("%w: marker %s occurs %d times, want 1", ErrTemplateMalformed, marker, n)
		}
	}

	if n := len(importStmtRe.FindAllStringIndex(text, -1)); n != 1 {
		return nil, fmt.Errorf("%w: found %d import statements, want 1", ErrTemplateMalformed, n)
	}
	imports := namedImportRe.FindAllStringSubmatchIndex(text, -1)
	if len(imports) != 1 {
		return nil, fmt.Errorf("%w: import statement is not of the form import { ... } from 'module'", ErrTemplateMalformed)
	}

	exports := exportDefaultRe.FindAllStringIndex(text, -1)
	if len(exports) != 1 {
		return nil, fmt.Errorf("%w: found %d default exports, want 1", ErrTemplateMalformed, len(exports))
	}

	loc := imports[0]
	imp, err := parseImport(text, loc)
	if err != nil {
		return nil, err
	}

	require, err := imp.Require()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateMalformed, err)
	}

	exp := exports[0]
	cjs, err := splice(text, []edit{
		{start: loc[0], end: loc[1], text: require},
		{start: exp[0], end: exp[1], text: "module.exports ="},
	})
	if err != nil {
		return nil, err
	}

	for _, marker := range []string{AttrsMarker, ContentMarker} {
		at := strings.Index(text, marker)
		if (at >= loc[0] && at < loc[1]) || (at >= exp[0] && at < exp[1]) {
			return nil, fmt.Errorf("%w: marker %s is part of the import or export statement", ErrTemplateMalformed, marker)
		}
	}

	return &Template{
		source: text,
		imp:    imp,
		esm:    text,
		cjs:    cjs,
	}, nil
}

// Body returns the template text for f, markers still in place.
func (t *Template) Body(f format.Format) string {
	if f == format.CJS {
		return t.cjs
	}
	return t.esm
}

// Import returns the template's import statement.
func (t *Template) Import() Import {
	imp := t.imp
	imp.Bindings = append([]Binding(nil), t.imp.Bindings...)
	return imp
}

// Source returns the template text as loaded.
func (t *Template) Source() string {
	return t.source
}

func parseImport(text string, loc []int) (Import, error) {
	imp := Import{}
	switch {
	case loc[4] >= 0:
		imp.Module = text[loc[4]:loc[5]]
	case loc[6] >= 0:
		imp.Module = text[loc[6]:loc[7]]
	}
	if imp.Module == "" {
		return Import{}, fmt.Errorf("%w: import has an empty module specifier", ErrTemplateMalformed)
	}

	clause := text[loc[2]:loc[3]]
	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := bindingRe.FindStringSubmatch(part)
		if m == nil {
			return Import{}, fmt.Errorf("%w: cannot convert import binding %q", ErrTemplateMalformed, part)
		}
		imp.Bindings = append(imp.Bindings, Binding{Name: m[1], Alias: m[2]})
	}
	if len(imp.Bindings) == 0 {
		return Import{}, fmt.Errorf("%w: import binds no names", ErrTemplateMalformed)
	}

	return imp, nil
}

type edit struct {
	start, end int
	text       string
}

// splice applies non-overlapping edits given in any order.
func splice(text string, edits []edit) (string, error) {
	slices.SortFunc(edits, func(a, b edit) int { return a.start - b.start })

	var b strings.Builder
	last := 0
	for _, e := range edits {
		if e.start < last {
			return "", fmt.Errorf("%w: default export overlaps the import statement", ErrTemplateMalformed)
		}
		b.WriteString(text[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
