package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactStatusRequest struct {
	Status string `json:"status"`
}

type ContactResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	ReadAt    *string `json:"readAt,omitempty"`
	RepliedAt *string `json:"repliedAt,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func contactToResponse(c domain.Contact) ContactResponse {
	resp := ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.ReadAt != nil {
		v := c.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	if c.RepliedAt != nil {
		v := c.RepliedAt.Format(time.RFC3339)
		resp.RepliedAt = &v
	}
	return resp
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide name, email, and message")
		return
	}

	contact, err := h.contacts.SubmitMessage(c.Request.Context(), domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if v, ok := service.AsValidationError(err); ok {
			fail(c, http.StatusBadRequest, v.Messages[0])
			return
		}
		h.serverError(c, "Server error. Please try again later.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message received successfully! I'll get back to you soon.",
		"data": gin.H{
			"id":        contact.ID,
			"name":      contact.Name,
			"email":     contact.Email,
			"createdAt": contact.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (h *Handler) listContacts(c *gin.Context) {
	contacts, err := h.contacts.ListMessages(c.Request.Context())
	if err != nil {
		h.serverError(c, "Server error", err)
		return
	}

	resp := make([]ContactResponse, len(contacts))
	for i := range contacts {
		resp[i] = contactToResponse(contacts[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(resp),
		"data":    resp,
	})
}

func (h *Handler) updateContactStatus(c *gin.Context) {
	var req contactStatusRequest
	_ = c.ShouldBindJSON(&req)

	contact, err := h.contacts.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ContactStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			fail(c, http.StatusBadRequest, "Invalid status. Must be: new, read, or replied")
		case errors.Is(err, repository.ErrNotFound):
			fail(c, http.StatusNotFound, "Contact message not found")
		default:
			h.serverError(c, "Server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated successfully",
		"data":    contactToResponse(*contact),
	})
}
