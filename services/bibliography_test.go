package services

import (
	"testing"

	"portfolio/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatReference(t *testing.T) {
	year := 2023
	r := &models.Research{
		Title:           "Graph methods.",
		Authors:         strPtr("Doe J, Roe R"),
		PublicationYear: &year,
		JournalName:     strPtr("Networks"),
		DOI:             strPtr("10.1000/xyz"),
	}
	assert.Equal(t, "Doe J, Roe R (2023). Graph methods. Networks. doi:10.1000/xyz", FormatReference(r))
}

func TestFormatReferenceMinimal(t *testing.T) {
	assert.Equal(t, "Unknown Authors (n.d.). Untitled.", FormatReference(&models.Research{}))
}

func TestFormatReferenceManyAuthors(t *testing.T) {
	r := &models.Research{Title: "T", Authors: strPtr("A, B, C, D, E, F, G")}
	assert.Equal(t, "A, B, C, D, E, F et al. (n.d.). T.", FormatReference(r))
}
