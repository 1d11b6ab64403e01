package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
	maxTagLength         = 30
)

var urlPattern = regexp.MustCompile(`^https?://.+`)

// Project represents a single portfolio entry.
type Project struct {
	ID                string
	Title             string
	Description       string
	Tags              []string
	Link              string
	ImageURL          string
	Featured          bool
	UnderConstruction bool
	Order             int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Normalize trims free text fields in place.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Link = strings.TrimSpace(p.Link)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	for i := range p.Tags {
		p.Tags[i] = strings.TrimSpace(p.Tags[i])
	}
}

// Validate returns one message per violated constraint, empty when the project is valid.
func (p *Project) Validate() []string {
	var errs []string

	if p.Title == "" {
		errs = append(errs, "Project title is required")
	} else if len(p.Title) > maxTitleLength {
		errs = append(errs, "Title cannot exceed 100 characters")
	}

	if p.Description == "" {
		errs = append(errs, "Project description is required")
	} else if len(p.Description) > maxDescriptionLength {
		errs = append(errs, "Description cannot exceed 500 characters")
	}

	for _, tag := range p.Tags {
		if len(tag) > maxTagLength {
			errs = append(errs, "Tag cannot exceed 30 characters")
			break
		}
	}

	if p.Link == "" {
		errs = append(errs, "Project link is required")
	} else if !urlPattern.MatchString(p.Link) {
		errs = append(errs, "Please enter a valid URL")
	}

	if p.ImageURL != "" && !urlPattern.MatchString(p.ImageURL) {
		errs = append(errs, "Please enter a valid image URL")
	}

	return errs
}
