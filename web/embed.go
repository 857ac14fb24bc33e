// Package web holds the embedded HTML templates.
package web

import "embed"

//go:embed all:templates
var Templates embed.FS
