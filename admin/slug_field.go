package admin

import "portfolio/services"

// SlugField derives a slug from the title while a record is being created,
// until the slug is edited by hand. Editing an existing record never touches
// the slug.
type SlugField struct {
	creating bool
	edited   bool
	Value    string
}

func NewSlugField(creating bool, slug string) *SlugField {
	return &SlugField{creating: creating, Value: slug}
}

// TitleChanged updates the slug from the new title if it is still automatic.
func (f *SlugField) TitleChanged(title string) {
	if f.creating && !f.edited {
		f.Value = services.Slugify(title)
	}
}

// Edit sets the slug manually and stops automatic updates.
func (f *SlugField) Edit(slug string) {
	f.Value = slug
	f.edited = true
}

// Automatic reports whether the slug still follows the title.
func (f *SlugField) Automatic() bool {
	return f.creating && !f.edited
}
