// Package processors provides post-processors for generated artifacts.
package processors

import (
	"path/filepath"
	"slices"
	"strings"
)

// Banner prepends a line comment header to JavaScript and TypeScript files.
//
// Example usage:
//
//	eng := engine.New(engine.WithPostProcessor(processors.NewBanner("Generated by iconforge. DO NOT EDIT.")))
type Banner struct {
	// Text is the header; each of its lines becomes one // comment line.
	Text string
	// Extensions lists the file extensions the banner applies to.
	Extensions []string
}

// NewBanner creates a banner for .js and .ts files.
func NewBanner(text string) *Banner {
	return &Banner{
		Text:       text,
		Extensions: []string{".js", ".ts"},
	}
}

// Process implements the postprocess.Processor interface.
func (b *Banner) Process(path string, content []byte) ([]byte, error) {
	if b.Text == "" || !slices.Contains(b.Extensions, strings.ToLower(filepath.Ext(path))) {
		return content, nil
	}

	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(b.Text, "\n"), "\n") {
		sb.WriteString("//")
		if line != "" {
			sb.WriteByte(' ')
			sb.WriteString(line)
		}
		sb.WriteByte('\n')
	}
	sb.Write(content)
	return []byte(sb.String()), nil
}
