package models

import "time"

// ResearchType classifies a publication.
type ResearchType string

const (
	ResearchJournal    ResearchType = "journal"
	ResearchThesis     ResearchType = "thesis"
	ResearchConference ResearchType = "conference"
	ResearchBook       ResearchType = "book"
	ResearchOther      ResearchType = "other"
)

// Valid reports whether t is one of the known publication types.
func (t ResearchType) Valid() bool {
	switch t {
	case ResearchJournal, ResearchThesis, ResearchConference, ResearchBook, ResearchOther:
		return true
	}
	return false
}

// Research is a publication (paper, thesis, talk, ...).
type Research struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	Title           string       `json:"title" gorm:"not null"`
	Slug            string       `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Excerpt         string       `json:"excerpt" gorm:"type:text;not null"`
	Content         string       `json:"content" gorm:"type:text;not null"`
	Image           *string      `json:"image"`
	Published       bool         `json:"published" gorm:"not null;index"`
	Type            ResearchType `json:"type" gorm:"size:32;not null;default:'journal'"`
	Authors         *string      `json:"authors"`
	PublicationYear *int         `json:"publicationYear"`
	JournalName     *string      `json:"journalName"`
	DOI             *string      `json:"doi" gorm:"column:doi"`
	PDFURL          *string      `json:"pdfUrl" gorm:"column:pdf_url"`
	ExternalURL     *string      `json:"externalUrl" gorm:"column:external_url"`
	// Keywords is a comma-separated list, see SplitKeywords.
	Keywords  *string   `json:"keywords"`
	Abstract  *string   `json:"abstract" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Research) TableName() string {
	return "research"
}

// KeywordList returns the decoded keywords.
func (r Research) KeywordList() []string {
	if r.Keywords == nil {
		return nil
	}
	return SplitKeywords(*r.Keywords)
}

// ResearchSummary is the public listing projection of Research (no content).
type ResearchSummary struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	Excerpt         string       `json:"excerpt"`
	Image           *string      `json:"image"`
	CreatedAt       time.Time    `json:"createdAt"`
	Published       bool         `json:"published"`
	Type            ResearchType `json:"type"`
	Authors         *string      `json:"authors"`
	PublicationYear *int         `json:"publicationYear"`
	JournalName     *string      `json:"journalName"`
	DOI             *string      `json:"doi" gorm:"column:doi"`
	PDFURL          *string      `json:"pdfUrl" gorm:"column:pdf_url"`
	ExternalURL     *string      `json:"externalUrl" gorm:"column:external_url"`
	Keywords        *string      `json:"keywords"`
	Abstract        *string      `json:"abstract"`
}

func (s ResearchSummary) KeywordList() []string {
	if s.Keywords == nil {
		return nil
	}
	return SplitKeywords(*s.Keywords)
}
