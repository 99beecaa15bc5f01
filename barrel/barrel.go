// Package barrel builds the index modules that re-export every generated
// component.
package barrel

import (
	"fmt"
	"strings"

	"github.com/cpcf/iconforge/catalog"
	"github.com/cpcf/iconforge/format"
)

// Build returns one export line per icon, in catalog order.
//
// ESM lines re-export the default binding:
//
//	export { default as XIcon } from './XIcon.js';
//
// CJS lines assign onto module.exports:
//
//	module.exports.XIcon = require('./XIcon.js');
//
// With includeExtension false the ".js" suffix is left off, which is what
// declaration barrels need to resolve the sibling .d.ts files.
func Build(icons catalog.Catalog, f format.Format, includeExtension bool) string {
	ext := ""
	if includeExtension {
		ext = format.SourceExt
	}

	var b strings.Builder
	for i := range icons.Len() {
		name := icons.At(i).Name
		switch f {
		case format.CJS:
			fmt.Fprintf(&b, "module.exports.%s = require('./%s%s');\n", name, name, ext)
		default:
			fmt.Fprintf(&b, "export { default as %s } from './%s%s';\n", name, name, ext)
		}
	}
	return b.String()
}

// Declarations returns the type declaration barrel. It is the same for every
// module format.
func Declarations(icons catalog.Catalog) string {
	return Build(icons, format.ESM, false)
}
