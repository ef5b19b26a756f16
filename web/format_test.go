package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "19 Oktober 2026", FormatDate(d, "id"))
	assert.Equal(t, "October 19, 2026", FormatDate(d, "en"))
	assert.Equal(t, "19 Oktober 2026", FormatDate(d, "fr"))
	assert.Empty(t, FormatDate(time.Time{}, "id"))
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Conference", TypeLabel("conference", "en"))
	assert.Equal(t, "Journal", TypeLabel("JOURNAL", "id"))
}

func TestFirstN(t *testing.T) {
	assert.Equal(t, []int{1, 2}, firstN([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1}, firstN([]int{1}, 3))
	assert.Empty(t, firstN([]int(nil), 3))
}
