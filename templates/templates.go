// Package templates embeds the server-rendered views.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
