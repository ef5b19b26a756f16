package admin

import (
	"context"
	"fmt"
)

// Collection holds the loaded records of one type. Every mutation is followed
// by a full refetch, so Items always mirrors the backend (last write wins).
type Collection[T any, In any] struct {
	resource Resource[T, In]

	Items []T
	// Err is the error of the last failed operation, nil after a success.
	Err error
}

func NewCollection[T any, In any](r Resource[T, In]) *Collection[T, In] {
	return &Collection[T, In]{resource: r}
}

// Refresh reloads Items. On failure the previous items are kept.
func (c *Collection[T, In]) Refresh(ctx context.Context) error {
	items, err := c.resource.List(ctx)
	if err != nil {
		c.Err = fmt.Errorf("load: %w", err)
		return c.Err
	}
	c.Items = items
	c.Err = nil
	return nil
}

// Save performs req and reloads the collection.
func (c *Collection[T, In]) Save(ctx context.Context, req SaveRequest[In]) error {
	if err := req.dispatch(ctx, c); err != nil {
		c.Err = err
		return err
	}
	return c.Refresh(ctx)
}

func (c *Collection[T, In]) create(ctx context.Context, in In) error {
	if _, err := c.resource.Create(ctx, in); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func (c *Collection[T, In]) update(ctx context.Context, id uint, in In) error {
	if _, err := c.resource.Update(ctx, id, in); err != nil {
		return fmt.Errorf("update %d: %w", id, err)
	}
	return nil
}

// Delete removes the record after confirm agrees and reloads the collection.
// It reports whether the delete was carried out.
func (c *Collection[T, In]) Delete(ctx context.Context, id uint, confirm Confirm) (bool, error) {
	if confirm != nil && !confirm(id) {
		return false, nil
	}
	if err := c.resource.Delete(ctx, id); err != nil {
		c.Err = fmt.Errorf("delete %d: %w", id, err)
		return false, c.Err
	}
	return true, c.Refresh(ctx)
}
