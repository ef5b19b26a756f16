package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/models"
	"portfolio/services"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// APIError is a non-2xx answer of the JSON API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to a running site over its JSON API.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), APIKey: apiKey, HTTP: httpClient}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-KEY", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// LookupDOI asks the site for a research draft prefilled from DOI metadata.
func (c *Client) LookupDOI(ctx context.Context, doi string) (*services.ResearchInput, error) {
	var draft services.ResearchInput
	if err := c.do(ctx, http.MethodGet, "/api/research/admin/lookup?doi="+url.QueryEscape(doi), nil, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *Client) ProjectStore() Resource[models.Project, services.ProjectInput] {
	return &remote[models.Project, services.ProjectInput]{c: c, list: "/api/projects", create: "/api/projects", item: "/api/projects/%d"}
}

func (c *Client) PostStore() Resource[models.BlogPost, services.BlogPostInput] {
	return &remote[models.BlogPost, services.BlogPostInput]{c: c, list: "/api/blog/admin", create: "/api/blog", item: "/api/blog/admin/%d"}
}

func (c *Client) ResearchStore() Resource[models.Research, services.ResearchInput] {
	return &remote[models.Research, services.ResearchInput]{c: c, list: "/api/research/admin", create: "/api/research", item: "/api/research/admin/%d"}
}

func (c *Client) MessageStore() Inbox {
	return &remote[models.Message, services.MessageInput]{c: c, list: "/api/contact", create: "/api/contact", item: "/api/contact/%d"}
}

// remote is a Resource backed by API paths.
type remote[T any, In any] struct {
	c      *Client
	list   string
	create string
	item   string
}

func (r *remote[T, In]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.c.do(ctx, http.MethodGet, r.list, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *remote[T, In]) Create(ctx context.Context, in In) (*T, error) {
	var item T
	if err := r.c.do(ctx, http.MethodPost, r.create, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *remote[T, In]) Update(ctx context.Context, id uint, in In) (*T, error) {
	var item T
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf(r.item, id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *remote[T, In]) Delete(ctx context.Context, id uint) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf(r.item, id), nil, nil)
}
