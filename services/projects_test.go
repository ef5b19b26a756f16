package services

import (
	"context"
	"testing"

	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validProject(title string) ProjectInput {
	return ProjectInput{
		Title:       title,
		Description: "A description",
		Image:       "/images/p.png",
		TechStack:   []string{"Go", "PostgreSQL"},
	}
}

func TestProjectCreateGetRoundTrip(t *testing.T) {
	svc := NewProjectService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	in := validProject("Portfolio")
	in.GithubURL = strPtr("https://github.com/me/portfolio")
	in.DemoURL = strPtr("")
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Featured)
	assert.Nil(t, created.DemoURL)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", got.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, got.TechStack)
	require.NotNil(t, got.GithubURL)
	assert.Equal(t, "https://github.com/me/portfolio", *got.GithubURL)
}

func TestProjectCreateRejectsMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db, zap.NewNop())
	ctx := context.Background()

	cases := map[string]func(*ProjectInput){
		"title":           func(in *ProjectInput) { in.Title = "" },
		"blank title":     func(in *ProjectInput) { in.Title = "   " },
		"description":     func(in *ProjectInput) { in.Description = "" },
		"image":           func(in *ProjectInput) { in.Image = "" },
		"techStack":       func(in *ProjectInput) { in.TechStack = nil },
		"blank techStack": func(in *ProjectInput) { in.TechStack = []string{"  ", ""} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validProject("x")
			mutate(&in)
			_, err := svc.Create(ctx, in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "Title, description, image, and techStack are required", ve.Message)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProjectListFeaturedFirst(t *testing.T) {
	svc := NewProjectService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, validProject("old"))
	require.NoError(t, err)
	featured := validProject("featured")
	featured.Featured = true
	_, err = svc.Create(ctx, featured)
	require.NoError(t, err)
	_, err = svc.Create(ctx, validProject("new"))
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "featured", list[0].Title)
	assert.Equal(t, "new", list[1].Title)
	assert.Equal(t, "old", list[2].Title)
}

func TestProjectUpdateOverwrites(t *testing.T) {
	svc := NewProjectService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	in := validProject("before")
	in.Featured = true
	in.GithubURL = strPtr("https://github.com/me/x")
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ProjectInput{
		Title:       "after",
		Description: "new",
		Image:       "/n.png",
		TechStack:   []string{"Rust"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, []string{"Rust"}, got.TechStack)
	assert.False(t, got.Featured)
	assert.Nil(t, got.GithubURL)
}

func TestProjectUpdateDeleteMissing(t *testing.T) {
	svc := NewProjectService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Update(ctx, 42, validProject("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 42), ErrNotFound)
}

func TestProjectDeleteThenGet(t *testing.T) {
	svc := NewProjectService(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validProject("gone"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
