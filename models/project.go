package models

import "time"

// Project is a portfolio entry shown in the projects section.
type Project struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Image       string `json:"image" gorm:"not null"`
	// TechStack is persisted as a JSON array in a text column.
	TechStack []string  `json:"techStack" gorm:"serializer:json;type:text;not null"`
	GithubURL *string   `json:"githubUrl" gorm:"column:github_url"`
	DemoURL   *string   `json:"demoUrl" gorm:"column:demo_url"`
	Featured  bool      `json:"featured" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// TableName sets the table name explicitly.
func (Project) TableName() string {
	return "projects"
}
