package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContact() Contact {
	return Contact{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "Hi, I'd like to talk about a project.",
	}
}

func TestContact_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Contact)
		want   string
	}{
		{"valid", func(c *Contact) {}, ""},
		{"missing name", func(c *Contact) { c.Name = "" }, "Please provide name, email, and message"},
		{"missing email", func(c *Contact) { c.Email = "" }, "Please provide name, email, and message"},
		{"missing message", func(c *Contact) { c.Message = "" }, "Please provide name, email, and message"},
		{"name too long", func(c *Contact) { c.Name = strings.Repeat("a", 101) }, "Name cannot exceed 100 characters"},
		{"message too long", func(c *Contact) { c.Message = strings.Repeat("a", 1001) }, "Message cannot exceed 1000 characters"},
		{"bad email", func(c *Contact) { c.Email = "nope@@example" }, "Please provide a valid email address"},
		{"email without tld", func(c *Contact) { c.Email = "user@host" }, "Please provide a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.mutate(&c)
			assert.Equal(t, tt.want, c.Validate())
		})
	}
}

func TestContact_Normalize(t *testing.T) {
	c := Contact{
		Name:    "  Jordan  ",
		Email:   " Jordan@Example.COM ",
		Message: " hello ",
	}
	c.Normalize()

	assert.Equal(t, "Jordan", c.Name)
	assert.Equal(t, "jordan@example.com", c.Email)
	assert.Equal(t, "hello", c.Message)
}

func TestValidContactStatus(t *testing.T) {
	assert.True(t, ValidContactStatus(ContactStatusNew))
	assert.True(t, ValidContactStatus(ContactStatusRead))
	assert.True(t, ValidContactStatus(ContactStatusReplied))
	assert.False(t, ValidContactStatus("archived"))
	assert.False(t, ValidContactStatus(""))
}
