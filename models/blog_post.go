package models

import "time"

// BlogPost is an article. Content is stored as HTML-ish text.
type BlogPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Excerpt   string    `json:"excerpt" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Image     *string   `json:"image"`
	Published bool      `json:"published" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogPostSummary is the public listing projection of BlogPost.
type BlogPostSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	Published bool      `json:"published"`
}
