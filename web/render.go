package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"portfolio/models"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates static
var assets embed.FS

var publicPages = []string{"home", "blog_list", "blog_post", "research_list", "research_detail", "error"}

var adminPages = []string{"admin_dashboard", "admin_edit", "admin_messages"}

// htmlRenderer renders one template set per page, each made of the shared
// layout plus the page's own "title" and "content" blocks.
type htmlRenderer struct {
	templates map[string]*template.Template
}

func (r *htmlRenderer) Instance(name string, data any) render.Render {
	return render.HTML{Template: r.templates[name], Name: "layout", Data: data}
}

func newRenderer(funcs template.FuncMap) (*htmlRenderer, error) {
	r := &htmlRenderer{templates: map[string]*template.Template{}}
	for _, page := range publicPages {
		t, err := template.New(page).Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.templates[page] = t
	}
	for _, page := range adminPages {
		t, err := template.New(page).Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/admin_forms.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

func (s *Site) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			return FormatDate(t, s.Config.SiteLocale)
		},
		"isoDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"content": s.content.Render,
		"typeLabel": func(t models.ResearchType) string {
			return TypeLabel(string(t), s.Config.SiteLocale)
		},
		"deref": func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		},
		"year": func(p *int) string {
			if p == nil {
				return ""
			}
			return fmt.Sprint(*p)
		},
		"keywords": func(kw *string, n int) []string {
			if kw == nil {
				return nil
			}
			list := models.SplitKeywords(*kw)
			if n > 0 {
				return firstN(list, n)
			}
			return list
		},
		"join": strings.Join,
		// form bundles what the admin form partials need.
		"form": func(prefix string, item any, uploads bool) map[string]any {
			return map[string]any{"Prefix": prefix, "Item": item, "UploadsOn": uploads}
		},
		"imageField": func(value string, uploads bool) map[string]any {
			return map[string]any{"Value": value, "UploadsOn": uploads}
		},
		"flashText": func(flag string) string {
			switch flag {
			case "saved":
				return "Saved."
			case "deleted":
				return "Deleted."
			case "error":
				return "Something went wrong. Please try again."
			}
			return ""
		},
		"researchTypes": func() []models.ResearchType {
			return []models.ResearchType{models.ResearchJournal, models.ResearchThesis, models.ResearchConference, models.ResearchBook, models.ResearchOther}
		},
	}
}
