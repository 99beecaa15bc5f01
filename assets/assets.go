// Package assets embeds the default icon catalog and component template.
package assets

import "embed"

const (
	CatalogPath  = "icons.yaml"
	TemplatePath = "template.js"
)

//go:embed icons.yaml template.js
var FS embed.FS
