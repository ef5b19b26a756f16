package web

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// Profile holds the static sections of the home page.
type Profile struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Tagline  string   `yaml:"tagline"`
	Avatar   string   `yaml:"avatar"`
	CVURL    string   `yaml:"cv_url"`
	Location string   `yaml:"location"`
	Email    string   `yaml:"email"`
	About    []string `yaml:"about"`
	Stats    []struct {
		Label string `yaml:"label"`
		Value string `yaml:"value"`
	} `yaml:"stats"`
	Skills []struct {
		Title  string   `yaml:"title"`
		Skills []string `yaml:"skills"`
	} `yaml:"skills"`
	Testimonials []struct {
		Name    string `yaml:"name"`
		Role    string `yaml:"role"`
		Content string `yaml:"content"`
	} `yaml:"testimonials"`
	Socials []struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	} `yaml:"socials"`
}

// LoadProfile reads the profile at path, or the embedded default when path is
// empty.
func LoadProfile(path string) (*Profile, error) {
	data := defaultProfile
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile %q has no name", path)
	}
	return &p, nil
}
