package web

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// absURL joins the site URL and path segments.
func (s *Site) absURL(parts ...string) string {
	u := strings.TrimRight(s.Config.SiteURL, "/")
	for _, p := range parts {
		u += "/" + strings.Trim(p, "/")
	}
	if len(parts) == 0 {
		u += "/"
	}
	return u
}

func writeXML(c *gin.Context, contentType string, v any) {
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	c.Writer.Write([]byte(xml.Header))
	xml.NewEncoder(c.Writer).Encode(v)
}

func (s *Site) feed(c *gin.Context) {
	posts, err := s.Blog.ListPublished(c.Request.Context())
	if err != nil {
		s.serverError(c, "Failed to build feed", err)
		return
	}

	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := s.absURL("blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			PubDate:     p.CreatedAt.UTC().Format(http.TimeFormat),
			GUID:        link,
		})
	}
	writeXML(c, "application/rss+xml; charset=utf-8", rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       s.Config.SiteName,
			Link:        s.absURL(),
			Description: s.Profile.Tagline,
			Language:    s.Config.SiteLocale,
			Items:       items,
		},
	})
}

func (s *Site) sitemap(c *gin.Context) {
	ctx := c.Request.Context()
	urls := []sitemapURL{
		{Loc: s.absURL()},
		{Loc: s.absURL("blog")},
		{Loc: s.absURL("research")},
	}

	posts, err := s.Blog.ListPublished(ctx)
	if err != nil {
		s.serverError(c, "Failed to build sitemap", err)
		return
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{Loc: s.absURL("blog", p.Slug), LastMod: p.CreatedAt.Format("2006-01-02")})
	}

	research, err := s.Research.ListPublished(ctx)
	if err != nil {
		s.serverError(c, "Failed to build sitemap", err, zap.String("section", "research"))
		return
	}
	for _, r := range research {
		urls = append(urls, sitemapURL{Loc: s.absURL("research", r.Slug), LastMod: r.CreatedAt.Format("2006-01-02")})
	}

	writeXML(c, "application/xml; charset=utf-8", sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}
