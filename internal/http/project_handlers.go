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

type projectRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Tags              []string `json:"tags"`
	Link              string   `json:"link"`
	ImageURL          string   `json:"imageURL"`
	Featured          bool     `json:"featured"`
	UnderConstruction bool     `json:"underConstruction"`
	Order             int      `json:"order"`
}

func (r projectRequest) toDomain() domain.Project {
	return domain.Project{
		Title:             r.Title,
		Description:       r.Description,
		Tags:              r.Tags,
		Link:              r.Link,
		ImageURL:          r.ImageURL,
		Featured:          r.Featured,
		UnderConstruction: r.UnderConstruction,
		Order:             r.Order,
	}
}

type ProjectResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Tags              []string `json:"tags"`
	Link              string   `json:"link"`
	ImageURL          string   `json:"imageURL"`
	Featured          bool     `json:"featured"`
	UnderConstruction bool     `json:"underConstruction"`
	Order             int      `json:"order"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

func projectToResponse(p domain.Project) ProjectResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProjectResponse{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Tags:              tags,
		Link:              p.Link,
		ImageURL:          p.ImageURL,
		Featured:          p.Featured,
		UnderConstruction: p.UnderConstruction,
		Order:             p.Order,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		h.serverError(c, "Server Error", err)
		return
	}

	resp := make([]ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = projectToResponse(projects[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(resp),
		"data":    resp,
	})
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "Project not found")
			return
		}
		h.serverError(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    projectToResponse(*project),
	})
}

func (h *Handler) createProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), req.toDomain())
	if err != nil {
		if v, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation Error",
				"errors":  v.Messages,
			})
			return
		}
		h.serverError(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"data":    projectToResponse(*project),
	})
}

func (h *Handler) updateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projects.UpdateProject(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			fail(c, http.StatusNotFound, "Project not found")
		default:
			if v, ok := service.AsValidationError(err); ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Validation Error",
					"errors":  v.Messages,
				})
				return
			}
			h.serverError(c, "Server Error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"data":    projectToResponse(*project),
	})
}

func (h *Handler) deleteProject(c *gin.Context) {
	project, err := h.projects.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "Project not found")
			return
		}
		h.serverError(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully",
		"data":    projectToResponse(*project),
	})
}
