package admin

import (
	"context"

	"portfolio/models"
	"portfolio/services"
)

// Local serves the dashboard straight from the services.
type Local struct {
	Projects *services.ProjectService
	Blog     *services.BlogService
	Research *services.ResearchService
	Messages *services.MessageService
}

func (l *Local) ProjectStore() Resource[models.Project, services.ProjectInput] {
	return l.Projects
}

func (l *Local) PostStore() Resource[models.BlogPost, services.BlogPostInput] {
	return localPosts{l.Blog}
}

func (l *Local) ResearchStore() Resource[models.Research, services.ResearchInput] {
	return localResearch{l.Research}
}

func (l *Local) MessageStore() Inbox {
	return l.Messages
}

type localPosts struct{ *services.BlogService }

func (p localPosts) List(ctx context.Context) ([]models.BlogPost, error) {
	return p.ListAll(ctx)
}

type localResearch struct{ *services.ResearchService }

func (r localResearch) List(ctx context.Context) ([]models.Research, error) {
	return r.ListAll(ctx)
}
