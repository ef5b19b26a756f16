package admin

import (
	"context"
	"fmt"

	"portfolio/models"
	"portfolio/services"

	"golang.org/x/sync/errgroup"
)

// RecentMessageCount is how many messages the overview shows.
const RecentMessageCount = 5

// Dashboard is the state of one admin view.
type Dashboard struct {
	Projects *Collection[models.Project, services.ProjectInput]
	Posts    *Collection[models.BlogPost, services.BlogPostInput]
	Research *Collection[models.Research, services.ResearchInput]

	inbox Inbox
	// Messages holds every message, newest first.
	Messages []models.Message
}

func NewDashboard(b Backend) *Dashboard {
	return &Dashboard{
		Projects: NewCollection(b.ProjectStore()),
		Posts:    NewCollection(b.PostStore()),
		Research: NewCollection(b.ResearchStore()),
		inbox:    b.MessageStore(),
	}
}

// Load fetches every collection and the inbox.
func (d *Dashboard) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return d.Projects.Refresh(gctx) })
	g.Go(func() error { return d.Posts.Refresh(gctx) })
	g.Go(func() error { return d.Research.Refresh(gctx) })
	g.Go(func() error { return d.RefreshMessages(gctx) })
	return g.Wait()
}

func (d *Dashboard) RefreshMessages(ctx context.Context) error {
	messages, err := d.inbox.List(ctx)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	d.Messages = messages
	return nil
}

// RecentMessages returns the newest messages for the overview.
func (d *Dashboard) RecentMessages() []models.Message {
	if len(d.Messages) > RecentMessageCount {
		return d.Messages[:RecentMessageCount]
	}
	return d.Messages
}

// DeleteMessage removes a message after confirm agrees and reloads the inbox.
func (d *Dashboard) DeleteMessage(ctx context.Context, id uint, confirm Confirm) (bool, error) {
	if confirm != nil && !confirm(id) {
		return false, nil
	}
	if err := d.inbox.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete message %d: %w", id, err)
	}
	return true, d.RefreshMessages(ctx)
}
