// Package site generates the pages of a static site from a tree of markdown
// files and a template, and copies static assets next to them.
package site

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdsite.site'.
func tracer() tracing.Trace {
	return tracing.Select("mdsite.site")
}
