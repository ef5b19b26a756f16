// Package admin holds the dashboard state: one Collection per record type plus
// the message inbox, loaded from either the in-process services (Local) or the
// JSON API (Client).
package admin

import (
	"context"

	"portfolio/models"
	"portfolio/services"
)

// Resource is the CRUD backend of one record type. List returns the admin
// scope, drafts included.
type Resource[T any, In any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id uint, in In) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// Inbox is the backend of contact messages, which are never edited.
type Inbox interface {
	List(ctx context.Context) ([]models.Message, error)
	Delete(ctx context.Context, id uint) error
}

// Backend provides every resource the dashboard manages.
type Backend interface {
	ProjectStore() Resource[models.Project, services.ProjectInput]
	PostStore() Resource[models.BlogPost, services.BlogPostInput]
	ResearchStore() Resource[models.Research, services.ResearchInput]
	MessageStore() Inbox
}

// SaveRequest is either a CreateRequest or an UpdateRequest.
type SaveRequest[In any] interface {
	dispatch(ctx context.Context, s saver[In]) error
}

type saver[In any] interface {
	create(ctx context.Context, in In) error
	update(ctx context.Context, id uint, in In) error
}

// CreateRequest asks for a new record.
type CreateRequest[In any] struct {
	Input In
}

func (r CreateRequest[In]) dispatch(ctx context.Context, s saver[In]) error {
	return s.create(ctx, r.Input)
}

// UpdateRequest overwrites the record with ID.
type UpdateRequest[In any] struct {
	ID    uint
	Input In
}

func (r UpdateRequest[In]) dispatch(ctx context.Context, s saver[In]) error {
	return s.update(ctx, r.ID, r.Input)
}

// Confirm is asked before a delete; returning false cancels it.
type Confirm func(id uint) bool

// Always confirms every delete.
func Always(uint) bool { return true }
