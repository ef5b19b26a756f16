package web

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentRenderer turns stored post bodies into safe HTML.
type ContentRenderer struct {
	policy *bluemonday.Policy
}

func NewContentRenderer() *ContentRenderer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return &ContentRenderer{policy: p}
}

// Render converts newlines to <br /> and strips anything the UGC policy does
// not allow, such as scripts and event handlers.
func (r *ContentRenderer) Render(content string) template.HTML {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	html := strings.ReplaceAll(content, "\n", "<br />")
	return template.HTML(r.policy.Sanitize(html))
}
