// Package levels embeds the bundled TMX level files.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS
