package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"portfolio/admin"
	"portfolio/models"
	"portfolio/services"
	"portfolio/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// kind wires one record type into the dashboard routes.
type kind[T any, In any] struct {
	name       string
	collection func(*admin.Dashboard) *admin.Collection[T, In]
	id         func(*T) uint
	parse      func(s *Site, c *gin.Context, creating bool) (In, error)
}

var projectKind = kind[models.Project, services.ProjectInput]{
	name:       "projects",
	collection: func(d *admin.Dashboard) *admin.Collection[models.Project, services.ProjectInput] { return d.Projects },
	id:         func(p *models.Project) uint { return p.ID },
	parse:      parseProjectForm,
}

var postKind = kind[models.BlogPost, services.BlogPostInput]{
	name:       "blog",
	collection: func(d *admin.Dashboard) *admin.Collection[models.BlogPost, services.BlogPostInput] { return d.Posts },
	id:         func(p *models.BlogPost) uint { return p.ID },
	parse:      parsePostForm,
}

var researchKind = kind[models.Research, services.ResearchInput]{
	name:       "research",
	collection: func(d *admin.Dashboard) *admin.Collection[models.Research, services.ResearchInput] { return d.Research },
	id:         func(r *models.Research) uint { return r.ID },
	parse:      parseResearchForm,
}

func (s *Site) registerAdmin(router *gin.Engine) {
	g := router.Group(s.Config.AdminPrefix())
	if s.Config.APISecretKey != "" {
		g.Use(gin.BasicAuth(gin.Accounts{"admin": s.Config.APISecretKey}))
	}
	g.Use(func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("X-Robots-Tag", "noindex")
		c.Next()
	})

	g.GET("", s.adminDashboard)
	g.GET("/messages", s.adminMessages)
	g.POST("/messages/:id/delete", s.adminDeleteMessage)
	g.GET("/research/lookup", s.adminResearchLookup)

	registerKind(g, s, projectKind)
	registerKind(g, s, postKind)
	registerKind(g, s, researchKind)
}

func (s *Site) dashboard() *admin.Dashboard {
	return admin.NewDashboard(&admin.Local{
		Projects: s.Projects,
		Blog:     s.Blog,
		Research: s.Research,
		Messages: s.Messages,
	})
}

func (s *Site) adminPage(title string, data gin.H) gin.H {
	data["Prefix"] = s.Config.AdminPrefix()
	data["Admin"] = true
	return s.page(title, data)
}

// redirectAdmin sends the browser back to the dashboard with a flash flag.
func (s *Site) redirectAdmin(c *gin.Context, anchor, flash string) {
	target := fmt.Sprintf("%s?flash=%s", s.Config.AdminPrefix(), flash)
	if anchor != "" {
		target += "#" + anchor
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (s *Site) adminFailed(c *gin.Context, anchor, msg string, err error, fields ...zap.Field) {
	s.Logger.Error(msg, append(fields, zap.Error(err))...)
	s.redirectAdmin(c, anchor, "error")
}

func (s *Site) adminDashboard(c *gin.Context) {
	d := s.dashboard()
	status, flash := http.StatusOK, c.Query("flash")
	if err := d.Load(c.Request.Context()); err != nil {
		s.Logger.Error("Failed to load dashboard", zap.Error(err))
		status, flash = http.StatusInternalServerError, "error"
	}
	c.HTML(status, "admin_dashboard", s.adminPage("Dashboard", gin.H{
		"Dashboard":    d,
		"Recent":       d.RecentMessages(),
		"MessageCount": len(d.Messages),
		"Flash":        flash,
		"LookupOn":     s.Lookup != nil,
		"UploadsOn":    s.Uploader != nil,
		"NewProject":   &models.Project{},
		"NewPost":      &models.BlogPost{},
		"NewResearch":  &models.Research{Type: models.ResearchJournal},
	}))
}

func (s *Site) adminMessages(c *gin.Context) {
	d := s.dashboard()
	if err := d.RefreshMessages(c.Request.Context()); err != nil {
		s.adminFailed(c, "messages", "Failed to load messages", err)
		return
	}
	c.HTML(http.StatusOK, "admin_messages", s.adminPage("Messages", gin.H{
		"Messages": d.Messages,
		"Flash":    c.Query("flash"),
	}))
}

func (s *Site) adminDeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.adminFailed(c, "messages", "Invalid message id", err)
		return
	}
	if _, err := s.dashboard().DeleteMessage(c.Request.Context(), uint(id), admin.Always); err != nil {
		s.adminFailed(c, "messages", "Failed to delete message", err, zap.Uint64("id", id))
		return
	}
	c.Redirect(http.StatusSeeOther, s.Config.AdminPrefix()+"/messages?flash=deleted")
}

func (s *Site) adminResearchLookup(c *gin.Context) {
	if s.Lookup == nil {
		s.redirectAdmin(c, "research", "error")
		return
	}
	doi := c.Query("doi")
	draft, err := s.Lookup.LookupDOI(c.Request.Context(), doi)
	if err != nil {
		s.adminFailed(c, "research", "DOI lookup failed", err, zap.String("doi", doi))
		return
	}
	c.HTML(http.StatusOK, "admin_edit", s.adminPage("New research", gin.H{
		"Kind":      researchKind.name,
		"Item":      researchFromDraft(draft),
		"UploadsOn": s.Uploader != nil,
	}))
}

func registerKind[T any, In any](g *gin.RouterGroup, s *Site, k kind[T, In]) {
	g.POST("/"+k.name, func(c *gin.Context) {
		in, err := k.parse(s, c, true)
		if err != nil {
			s.adminFailed(c, k.name, "Invalid form", err, zap.String("kind", k.name))
			return
		}
		err = k.collection(s.dashboard()).Save(c.Request.Context(), admin.CreateRequest[In]{Input: in})
		if err != nil {
			s.adminFailed(c, k.name, "Create failed", err, zap.String("kind", k.name))
			return
		}
		s.redirectAdmin(c, k.name, "saved")
	})

	g.GET("/"+k.name+"/:id", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			s.notFound(c)
			return
		}
		item, err := findItem(c.Request.Context(), k, s.dashboard(), uint(id))
		if err != nil {
			s.adminFailed(c, k.name, "Failed to load record", err, zap.String("kind", k.name))
			return
		}
		if item == nil {
			s.notFound(c)
			return
		}
		c.HTML(http.StatusOK, "admin_edit", s.adminPage("Edit", gin.H{
			"Kind":      k.name,
			"Item":      item,
			"UploadsOn": s.Uploader != nil,
		}))
	})

	g.POST("/"+k.name+"/:id", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			s.adminFailed(c, k.name, "Invalid id", err)
			return
		}
		in, err := k.parse(s, c, false)
		if err != nil {
			s.adminFailed(c, k.name, "Invalid form", err, zap.String("kind", k.name))
			return
		}
		err = k.collection(s.dashboard()).Save(c.Request.Context(), admin.UpdateRequest[In]{ID: uint(id), Input: in})
		if err != nil {
			s.adminFailed(c, k.name, "Update failed", err, zap.String("kind", k.name), zap.Uint64("id", id))
			return
		}
		s.redirectAdmin(c, k.name, "saved")
	})

	g.POST("/"+k.name+"/:id/delete", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			s.adminFailed(c, k.name, "Invalid id", err)
			return
		}
		// the browser already asked for confirmation
		if _, err := k.collection(s.dashboard()).Delete(c.Request.Context(), uint(id), admin.Always); err != nil {
			s.adminFailed(c, k.name, "Delete failed", err, zap.String("kind", k.name), zap.Uint64("id", id))
			return
		}
		s.redirectAdmin(c, k.name, "deleted")
	})
}

func findItem[T any, In any](ctx context.Context, k kind[T, In], d *admin.Dashboard, id uint) (*T, error) {
	coll := k.collection(d)
	if err := coll.Refresh(ctx); err != nil {
		return nil, err
	}
	for i := range coll.Items {
		if k.id(&coll.Items[i]) == id {
			return &coll.Items[i], nil
		}
	}
	return nil, nil
}

func researchFromDraft(d *services.ResearchInput) *models.Research {
	r := &models.Research{
		Title:           d.Title,
		Slug:            d.Slug,
		Excerpt:         d.Excerpt,
		Content:         d.Content,
		Type:            models.ResearchType(d.Type),
		Authors:         d.Authors,
		PublicationYear: d.PublicationYear,
		JournalName:     d.JournalName,
		DOI:             d.DOI,
		PDFURL:          d.PDFURL,
		ExternalURL:     d.ExternalURL,
		Keywords:        d.Keywords,
		Abstract:        d.Abstract,
	}
	if r.Type == "" {
		r.Type = models.ResearchJournal
	}
	return r
}

func formValue(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.PostForm(key))
	if v == "" {
		return nil
	}
	return &v
}

func checkbox(c *gin.Context, key string) bool {
	switch c.PostForm(key) {
	case "on", "true", "1":
		return true
	}
	return false
}

// formSlug keeps a hand-written slug and derives one from the title otherwise,
// but only while creating.
func formSlug(c *gin.Context, creating bool) string {
	field := admin.NewSlugField(creating, strings.TrimSpace(c.PostForm("slug")))
	if field.Value != "" {
		field.Edit(field.Value)
	}
	field.TitleChanged(c.PostForm("title"))
	return field.Value
}

// formImage stores an uploaded "imageFile" when present, else returns the
// "image" URL field.
func (s *Site) formImage(c *gin.Context) (string, error) {
	if s.Uploader != nil {
		if fh, err := c.FormFile("imageFile"); err == nil && fh.Size > 0 {
			if fh.Size > storage.MaxUploadSize {
				return "", &services.ValidationError{Message: "File too large"}
			}
			f, err := fh.Open()
			if err != nil {
				return "", err
			}
			defer f.Close()
			return s.Uploader.Upload(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
		}
	}
	return strings.TrimSpace(c.PostForm("image")), nil
}

func parseProjectForm(s *Site, c *gin.Context, creating bool) (services.ProjectInput, error) {
	image, err := s.formImage(c)
	if err != nil {
		return services.ProjectInput{}, err
	}
	return services.ProjectInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Image:       image,
		TechStack:   models.SplitKeywords(c.PostForm("techStack")),
		GithubURL:   formValue(c, "githubUrl"),
		DemoURL:     formValue(c, "demoUrl"),
		Featured:    checkbox(c, "featured"),
	}, nil
}

func parsePostForm(s *Site, c *gin.Context, creating bool) (services.BlogPostInput, error) {
	image, err := s.formImage(c)
	if err != nil {
		return services.BlogPostInput{}, err
	}
	in := services.BlogPostInput{
		Title:     c.PostForm("title"),
		Slug:      formSlug(c, creating),
		Excerpt:   c.PostForm("excerpt"),
		Content:   c.PostForm("content"),
		Published: checkbox(c, "published"),
	}
	if image != "" {
		in.Image = &image
	}
	return in, nil
}

func parseResearchForm(s *Site, c *gin.Context, creating bool) (services.ResearchInput, error) {
	image, err := s.formImage(c)
	if err != nil {
		return services.ResearchInput{}, err
	}
	in := services.ResearchInput{
		Title:       c.PostForm("title"),
		Slug:        formSlug(c, creating),
		Excerpt:     c.PostForm("excerpt"),
		Content:     c.PostForm("content"),
		Published:   checkbox(c, "published"),
		Type:        c.PostForm("type"),
		Authors:     formValue(c, "authors"),
		JournalName: formValue(c, "journalName"),
		DOI:         formValue(c, "doi"),
		PDFURL:      formValue(c, "pdfUrl"),
		ExternalURL: formValue(c, "externalUrl"),
		Keywords:    formValue(c, "keywords"),
		Abstract:    formValue(c, "abstract"),
	}
	if image != "" {
		in.Image = &image
	}
	if y := strings.TrimSpace(c.PostForm("publicationYear")); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return in, &services.ValidationError{Message: "Publication year must be a number"}
		}
		in.PublicationYear = &year
	}
	return in, nil
}
