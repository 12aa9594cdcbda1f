// Package markdown renders backend-managed copy (FAQ answers, program
// sections, tips) to HTML safe for direct template interpolation.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Raw HTML inside markdown input is escaped (WithUnsafe is not set), and the
// rendered output still passes through the sanitizer because the source text
// is operator-editable table content, not code we control.
var renderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkhtml.WithHardWraps(),
	),
)

var policy = newContentPolicy()

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Render converts markdown source to sanitized HTML. Invalid input degrades
// to its escaped text form rather than an error; the copy is display-only.
func Render(source string) template.HTML {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
