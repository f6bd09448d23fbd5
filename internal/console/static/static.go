// Package static exposes console static assets for HTTP serving.
package static

import "embed"

// FS holds the console stylesheet bundle.
//
//go:embed *.css
var FS embed.FS
