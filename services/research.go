package services

import (
	"context"
	"strings"

	"portfolio/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResearchInput is the writable part of a research item.
type ResearchInput struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Excerpt         string  `json:"excerpt"`
	Content         string  `json:"content"`
	Image           *string `json:"image"`
	Published       bool    `json:"published"`
	Type            string  `json:"type"`
	Authors         *string `json:"authors"`
	PublicationYear *int    `json:"publicationYear"`
	JournalName     *string `json:"journalName"`
	DOI             *string `json:"doi"`
	PDFURL          *string `json:"pdfUrl"`
	ExternalURL     *string `json:"externalUrl"`
	Keywords        *string `json:"keywords"`
	Abstract        *string `json:"abstract"`
}

// researchType normalizes the type; empty means journal.
func (in ResearchInput) researchType() (models.ResearchType, error) {
	t := models.ResearchType(strings.ToLower(strings.TrimSpace(in.Type)))
	if t == "" {
		return models.ResearchJournal, nil
	}
	if !t.Valid() {
		return "", invalid("Type must be one of journal, thesis, conference, book, other")
	}
	return t, nil
}

func (in ResearchInput) validate() error {
	if blank(in.Title) || blank(in.Slug) || blank(in.Excerpt) || blank(in.Content) {
		return invalid("Title, slug, excerpt, and content are required")
	}
	return nil
}

func (in ResearchInput) apply(r *models.Research, t models.ResearchType) {
	r.Title = in.Title
	r.Slug = in.Slug
	r.Excerpt = in.Excerpt
	r.Content = in.Content
	r.Image = optional(in.Image)
	r.Published = in.Published
	r.Type = t
	r.Authors = optional(in.Authors)
	r.PublicationYear = in.PublicationYear
	r.JournalName = optional(in.JournalName)
	r.DOI = optional(in.DOI)
	r.PDFURL = optional(in.PDFURL)
	r.ExternalURL = optional(in.ExternalURL)
	r.Keywords = nil
	if kw := optional(in.Keywords); kw != nil {
		joined := models.JoinKeywords(models.SplitKeywords(*kw))
		r.Keywords = &joined
	}
	r.Abstract = optional(in.Abstract)
}

// ResearchService manages research publications.
type ResearchService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewResearchService(db *gorm.DB, logger *zap.Logger) *ResearchService {
	return &ResearchService{DB: db, Logger: logger}
}

// ListPublished returns published research without content, newest first.
func (s *ResearchService) ListPublished(ctx context.Context) ([]models.ResearchSummary, error) {
	items := []models.ResearchSummary{}
	err := s.DB.WithContext(ctx).Model(&models.Research{}).
		Select("id, title, slug, excerpt, image, created_at, published, type, authors, publication_year, journal_name, doi, pdf_url, external_url, keywords, abstract").
		Where("published = ?", true).
		Order("created_at DESC").Order("id DESC").
		Find(&items).Error
	return items, err
}

// ListAll returns every research item including drafts.
func (s *ResearchService) ListAll(ctx context.Context) ([]models.Research, error) {
	items := []models.Research{}
	err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&items).Error
	return items, err
}

// GetPublished looks research up by slug. Drafts are reported as ErrNotFound.
func (s *ResearchService) GetPublished(ctx context.Context, slug string) (*models.Research, error) {
	var r models.Research
	err := s.DB.WithContext(ctx).Where("slug = ? AND published = ?", slug, true).First(&r).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (s *ResearchService) Get(ctx context.Context, id uint) (*models.Research, error) {
	var r models.Research
	if err := s.DB.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (s *ResearchService) Create(ctx context.Context, in ResearchInput) (*models.Research, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	t, err := in.researchType()
	if err != nil {
		return nil, err
	}
	if err := checkSlug(in.Slug); err != nil {
		return nil, err
	}
	taken, err := slugInUse(ctx, s.DB, &models.Research{}, in.Slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	var r models.Research
	in.apply(&r, t)
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, translateWrite(err)
	}
	recordsCreated.WithLabelValues("research").Inc()
	s.Logger.Info("Research created", zap.Uint("id", r.ID), zap.String("slug", r.Slug), zap.String("type", string(r.Type)))
	return &r, nil
}

// Update overwrites every writable field of the research item. Only the type
// is checked.
func (s *ResearchService) Update(ctx context.Context, id uint, in ResearchInput) (*models.Research, error) {
	t, err := in.researchType()
	if err != nil {
		return nil, err
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkSlug(in.Slug); err != nil {
		return nil, err
	}
	taken, err := slugInUse(ctx, s.DB, &models.Research{}, in.Slug, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}
	in.apply(r, t)
	if err := s.DB.WithContext(ctx).Save(r).Error; err != nil {
		return nil, translateWrite(err)
	}
	return r, nil
}

func (s *ResearchService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Research{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.Logger.Info("Research deleted", zap.Uint("id", id))
	return nil
}
