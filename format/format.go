// Package format defines the module formats components are generated in.
package format

import (
	"fmt"
	"strings"
)

// Format is a JavaScript module convention.
type Format int

const (
	// ESM emits static import/export statements under <root>/esm.
	ESM Format = iota
	// CJS emits require() bindings and module.exports assignments under <root>.
	CJS
)

// All lists every format in build order.
var All = []Format{ESM, CJS}

const (
	// SourceExt is the extension of generated component and barrel modules.
	SourceExt = ".js"
	// DeclarationExt is the extension of generated type declarations.
	DeclarationExt = ".d.ts"
)

func (f Format) String() string {
	switch f {
	case ESM:
		return "esm"
	case CJS:
		return "cjs"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Dir is the sub-directory of the output root the format is written to.
// CJS output shares the output root itself.
func (f Format) Dir() string {
	if f == ESM {
		return "esm"
	}
	return ""
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == ESM || f == CJS
}

// Parse converts a format name such as "esm" or "CJS" into a Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "esm":
		return ESM, nil
	case "cjs":
		return CJS, nil
	default:
		return 0, fmt.Errorf("unknown module format %q", name)
	}
}

// ParseList converts format names, rejecting unknown and repeated entries.
func ParseList(names []string) ([]Format, error) {
	formats := make([]Format, 0, len(names))
	seen := make(map[Format]bool, len(names))

	for _, name := range names {
		f, err := Parse(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			return nil, fmt.Errorf("module format %q listed more than once", name)
		}
		seen[f] = true
		formats = append(formats, f)
	}

	return formats, nil
}
