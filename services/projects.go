package services

import (
	"context"
	"errors"
	"strings"

	"portfolio/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectInput is the writable part of a project.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	TechStack   []string `json:"techStack"`
	GithubURL   *string  `json:"githubUrl"`
	DemoURL     *string  `json:"demoUrl"`
	Featured    bool     `json:"featured"`
}

func (in ProjectInput) validate() error {
	if blank(in.Title) || blank(in.Description) || blank(in.Image) || len(cleanTechStack(in.TechStack)) == 0 {
		return invalid("Title, description, image, and techStack are required")
	}
	return nil
}

func (in ProjectInput) apply(p *models.Project) {
	p.Title = in.Title
	p.Description = in.Description
	p.Image = in.Image
	p.TechStack = cleanTechStack(in.TechStack)
	p.GithubURL = optional(in.GithubURL)
	p.DemoURL = optional(in.DemoURL)
	p.Featured = in.Featured
}

func cleanTechStack(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ProjectService manages portfolio projects.
type ProjectService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewProjectService(db *gorm.DB, logger *zap.Logger) *ProjectService {
	return &ProjectService{DB: db, Logger: logger}
}

// List returns every project, featured ones first, newest first.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.DB.WithContext(ctx).
		Order("featured DESC").Order("created_at DESC").Order("id DESC").
		Find(&projects).Error
	return projects, err
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := s.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var p models.Project
	in.apply(&p)
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	recordsCreated.WithLabelValues("project").Inc()
	s.Logger.Info("Project created", zap.Uint("id", p.ID), zap.String("title", p.Title))
	return &p, nil
}

// Update overwrites every writable field of the project.
func (s *ProjectService) Update(ctx context.Context, id uint, in ProjectInput) (*models.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(p)
	if err := s.DB.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.Logger.Info("Project deleted", zap.Uint("id", id))
	return nil
}

// slugInUse reports whether a row of model other than exceptID uses slug.
func slugInUse(ctx context.Context, db *gorm.DB, model any, slug string, exceptID uint) (bool, error) {
	var count int64
	q := db.WithContext(ctx).Model(model).Where("slug = ?", slug)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translateWrite maps a unique violation raced past slugInUse to ErrSlugTaken.
func translateWrite(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}
