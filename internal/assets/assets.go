// Package assets embeds the default collector and block sprites.
package assets

import "embed"

//go:embed *.png
var FS embed.FS
