package services

import (
	"context"
	"testing"

	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validResearch(slug string, published bool) ResearchInput {
	return ResearchInput{
		Title:     "Study " + slug,
		Slug:      slug,
		Excerpt:   "Short",
		Content:   "Long content",
		Published: published,
	}
}

func TestResearchDefaultsAndKeywords(t *testing.T) {
	svc := NewResearchService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	in := validResearch("paper", true)
	in.Keywords = strPtr(" graphs ,routing,, networks")
	year := 2023
	in.PublicationYear = &year
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, models.ResearchJournal, created.Type)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Keywords)
	assert.Equal(t, "graphs, routing, networks", *got.Keywords)
	assert.Equal(t, []string{"graphs", "routing", "networks"}, got.KeywordList())
	require.NotNil(t, got.PublicationYear)
	assert.Equal(t, 2023, *got.PublicationYear)
}

func TestResearchTypeHandling(t *testing.T) {
	svc := NewResearchService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	in := validResearch("thesis", true)
	in.Type = "THESIS"
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, models.ResearchThesis, created.Type)

	bad := validResearch("bad", true)
	bad.Type = "poster"
	_, err = svc.Create(ctx, bad)
	assert.True(t, IsValidation(err))

	_, err = svc.Update(ctx, created.ID, bad)
	assert.True(t, IsValidation(err))
}

func TestResearchPublicListing(t *testing.T) {
	svc := NewResearchService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, validResearch("hidden", false))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validResearch("visible", true))
	require.NoError(t, err)

	public, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "visible", public[0].Slug)
	assert.Equal(t, "Short", public[0].Excerpt)

	_, err = svc.GetPublished(ctx, "hidden")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResearchCreateRejectsMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewResearchService(db, zap.NewNop())

	in := validResearch("x", true)
	in.Content = " "
	_, err := svc.Create(context.Background(), in)
	assert.True(t, IsValidation(err))

	var count int64
	require.NoError(t, db.Model(&models.Research{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResearchUpdateAndDelete(t *testing.T) {
	svc := NewResearchService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	in := validResearch("r", true)
	in.DOI = strPtr("10.1000/xyz")
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, validResearch("r2", false))
	require.NoError(t, err)
	assert.Equal(t, "r2", updated.Slug)
	assert.Nil(t, updated.DOI)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, created.ID, validResearch("r3", true))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResearchRejectsReservedSlugs(t *testing.T) {
	db := newTestDB(t)
	svc := NewResearchService(db, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, validResearch("lookup", true))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Slug is reserved", ve.Message)

	var count int64
	require.NoError(t, db.Model(&models.Research{}).Count(&count).Error)
	assert.Zero(t, count)

	created, err := svc.Create(ctx, validResearch("r", true))
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID, validResearch("ADMIN", true))
	assert.True(t, IsValidation(err))
}
