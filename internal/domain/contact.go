package domain

import (
	"regexp"
	"strings"
	"time"
)

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ValidContactStatus reports whether s is one of the known lifecycle states.
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

const (
	maxContactNameLength    = 100
	maxContactMessageLength = 1000
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Contact is an inbound message submitted through the contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Status    ContactStatus
	ReadAt    *time.Time
	RepliedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize trims the name and message and lowercases the email address.
func (c *Contact) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Message = strings.TrimSpace(c.Message)
}

// Validate checks the submission fields. Unlike project validation the
// original form reports the first violation only, so a single message comes back.
func (c *Contact) Validate() string {
	if c.Name == "" || c.Email == "" || c.Message == "" {
		return "Please provide name, email, and message"
	}
	if len(c.Name) > maxContactNameLength {
		return "Name cannot exceed 100 characters"
	}
	if len(c.Message) > maxContactMessageLength {
		return "Message cannot exceed 1000 characters"
	}
	if !emailPattern.MatchString(c.Email) {
		return "Please provide a valid email address"
	}
	return ""
}
