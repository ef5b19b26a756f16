// Package web serves the public HTML pages, the feeds and the admin dashboard.
package web

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/config"
	"portfolio/services"
	"portfolio/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the services the pages read from.
type Deps struct {
	Projects *services.ProjectService
	Blog     *services.BlogService
	Research *services.ResearchService
	Messages *services.MessageService
	Lookup   *services.LookupService
	Uploader storage.Uploader
}

// Site renders the public pages and the admin dashboard.
type Site struct {
	Config  *config.Config
	Profile *Profile
	Deps
	Logger *zap.Logger

	content  *ContentRenderer
	renderer *htmlRenderer
	static   http.FileSystem
}

func New(cfg *config.Config, profile *Profile, deps Deps, logger *zap.Logger) (*Site, error) {
	s := &Site{
		Config:  cfg,
		Profile: profile,
		Deps:    deps,
		Logger:  logger,
		content: NewContentRenderer(),
	}
	r, err := newRenderer(s.templateFuncs())
	if err != nil {
		return nil, err
	}
	s.renderer = r

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	s.static = http.FS(static)
	return s, nil
}

// Register mounts the pages, the static assets and the dashboard.
func (s *Site) Register(router *gin.Engine) {
	router.HTMLRender = s.renderer

	router.StaticFS("/static", s.static)

	router.GET("/", s.home)
	router.POST("/contact", s.contact)
	router.GET("/blog", s.blogList)
	router.GET("/blog/:slug", s.blogPost)
	router.GET("/research", s.researchList)
	router.GET("/research/:slug", s.researchDetail)
	router.GET("/feed.xml", s.feed)
	router.GET("/sitemap.xml", s.sitemap)

	s.registerAdmin(router)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		s.notFound(c)
	})
}

// page merges the fields every template needs into data.
func (s *Site) page(title string, data gin.H) gin.H {
	out := gin.H{
		"SiteName": s.Config.SiteName,
		"SiteURL":  s.Config.SiteURL,
		"Locale":   s.Config.SiteLocale,
		"Profile":  s.Profile,
		"Title":    title,
		"Year":     time.Now().Year(),
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

func (s *Site) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", s.page("Not found", gin.H{
		"Heading": "404",
		"Message": "The page you are looking for does not exist.",
	}))
}

func (s *Site) serverError(c *gin.Context, msg string, err error, fields ...zap.Field) {
	s.Logger.Error(msg, append(fields, zap.Error(err))...)
	c.HTML(http.StatusInternalServerError, "error", s.page("Error", gin.H{
		"Heading": "Something went wrong",
		"Message": "Please try again later.",
	}))
}

func (s *Site) home(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := s.Projects.List(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch projects for home page", zap.Error(err))
		projects = nil
	}
	research, err := s.Research.ListPublished(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch research for home page", zap.Error(err))
		research = nil
	}
	posts, err := s.Blog.ListPublished(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch blog posts for home page", zap.Error(err))
		posts = nil
	}

	c.HTML(http.StatusOK, "home", s.page("", gin.H{
		"Projects":      projects,
		"Research":      firstN(research, 3),
		"Posts":         firstN(posts, 6),
		"ContactStatus": c.Query("contact"),
		"ContactReason": c.Query("reason"),
	}))
}

func (s *Site) contact(c *gin.Context) {
	in := services.MessageInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}
	_, err := s.Messages.Create(c.Request.Context(), in)
	var ve *services.ValidationError
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/?contact=sent#contact")
	case errors.As(err, &ve):
		c.Redirect(http.StatusSeeOther, "/?contact=invalid&reason="+url.QueryEscape(ve.Message)+"#contact")
	default:
		s.Logger.Error("Contact form error", zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/?contact=error#contact")
	}
}

func (s *Site) blogList(c *gin.Context) {
	posts, err := s.Blog.ListPublished(c.Request.Context())
	if err != nil {
		s.Logger.Error("Failed to fetch blog posts", zap.Error(err))
		posts = nil
	}
	c.HTML(http.StatusOK, "blog_list", s.page("Blog", gin.H{"Posts": posts}))
}

func (s *Site) blogPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := s.Blog.GetPublished(c.Request.Context(), slug)
	if errors.Is(err, services.ErrNotFound) {
		s.notFound(c)
		return
	}
	if err != nil {
		s.serverError(c, "Failed to fetch blog post", err, zap.String("slug", slug))
		return
	}
	c.HTML(http.StatusOK, "blog_post", s.page(post.Title, gin.H{"Post": post}))
}

func (s *Site) researchList(c *gin.Context) {
	items, err := s.Research.ListPublished(c.Request.Context())
	if err != nil {
		s.Logger.Error("Failed to fetch research", zap.Error(err))
		items = nil
	}
	c.HTML(http.StatusOK, "research_list", s.page("Research", gin.H{"Research": items}))
}

func (s *Site) researchDetail(c *gin.Context) {
	slug := c.Param("slug")
	item, err := s.Research.GetPublished(c.Request.Context(), slug)
	if errors.Is(err, services.ErrNotFound) {
		s.notFound(c)
		return
	}
	if err != nil {
		s.serverError(c, "Failed to fetch research", err, zap.String("slug", slug))
		return
	}
	c.HTML(http.StatusOK, "research_detail", s.page(item.Title, gin.H{
		"Item":     item,
		"Citation": services.FormatReference(item),
	}))
}
