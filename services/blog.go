package services

import (
	"context"

	"portfolio/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BlogPostInput is the writable part of a blog post.
type BlogPostInput struct {
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Excerpt   string  `json:"excerpt"`
	Content   string  `json:"content"`
	Image     *string `json:"image"`
	Published bool    `json:"published"`
}

func (in BlogPostInput) validate() error {
	if blank(in.Title) || blank(in.Slug) || blank(in.Excerpt) || blank(in.Content) {
		return invalid("Title, slug, excerpt, and content are required")
	}
	return nil
}

func (in BlogPostInput) apply(p *models.BlogPost) {
	p.Title = in.Title
	p.Slug = in.Slug
	p.Excerpt = in.Excerpt
	p.Content = in.Content
	p.Image = optional(in.Image)
	p.Published = in.Published
}

// BlogService manages blog posts.
type BlogService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewBlogService(db *gorm.DB, logger *zap.Logger) *BlogService {
	return &BlogService{DB: db, Logger: logger}
}

// ListPublished returns summaries of published posts, newest first.
func (s *BlogService) ListPublished(ctx context.Context) ([]models.BlogPostSummary, error) {
	posts := []models.BlogPostSummary{}
	err := s.DB.WithContext(ctx).Model(&models.BlogPost{}).
		Select("id, title, slug, excerpt, image, created_at, published").
		Where("published = ?", true).
		Order("created_at DESC").Order("id DESC").
		Find(&posts).Error
	return posts, err
}

// ListAll returns every post including drafts.
func (s *BlogService) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&posts).Error
	return posts, err
}

// GetPublished looks a post up by slug. Drafts are reported as ErrNotFound.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	err := s.DB.WithContext(ctx).Where("slug = ? AND published = ?", slug, true).First(&p).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *BlogService) Get(ctx context.Context, id uint) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := s.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *BlogService) Create(ctx context.Context, in BlogPostInput) (*models.BlogPost, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := checkSlug(in.Slug); err != nil {
		return nil, err
	}
	taken, err := slugInUse(ctx, s.DB, &models.BlogPost{}, in.Slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	var p models.BlogPost
	in.apply(&p)
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, translateWrite(err)
	}
	recordsCreated.WithLabelValues("blog_post").Inc()
	s.Logger.Info("Blog post created", zap.Uint("id", p.ID), zap.String("slug", p.Slug))
	return &p, nil
}

// Update overwrites every writable field of the post.
func (s *BlogService) Update(ctx context.Context, id uint, in BlogPostInput) (*models.BlogPost, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkSlug(in.Slug); err != nil {
		return nil, err
	}
	taken, err := slugInUse(ctx, s.DB, &models.BlogPost{}, in.Slug, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}
	in.apply(p)
	if err := s.DB.WithContext(ctx).Save(p).Error; err != nil {
		return nil, translateWrite(err)
	}
	return p, nil
}

func (s *BlogService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.Logger.Info("Blog post deleted", zap.Uint("id", id))
	return nil
}
