package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-api/internal/auth"
	"portfolio-api/internal/service"
	"portfolio-api/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth     service.AuthService
	tokens   *auth.TokenService
	projects service.ProjectService
	contacts service.ContactService
	storage  storage.Service
	opts     Options
	logger   *logrus.Logger
}

// Options carries the request-surface configuration for the handler.
type Options struct {
	Environment     string
	Bucket          string
	KeyPrefix       string
	PublicBaseURL   string
	CORSOrigins     []string
	RateLimitCount  int
	RateLimitWindow time.Duration
}

func NewHandler(
	authSvc service.AuthService,
	tokens *auth.TokenService,
	projects service.ProjectService,
	contacts service.ContactService,
	store storage.Service,
	opts Options,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		auth:     authSvc,
		tokens:   tokens,
		projects: projects,
		contacts: contacts,
		storage:  store,
		opts:     opts,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(h.opts.CORSOrigins))

	api := router.Group("/api")
	if h.opts.RateLimitCount > 0 && h.opts.RateLimitWindow > 0 {
		api.Use(rateLimitMiddleware(h.opts.RateLimitCount, h.opts.RateLimitWindow))
	}

	requireToken := auth.RequireToken(h.tokens)

	{
		api.POST("/auth/login", h.login)
		api.GET("/auth/verify", requireToken, h.verifyToken)
		api.POST("/auth/logout", h.logout)

		api.GET("/projects", h.listProjects)
		api.GET("/projects/:id", h.getProject)
		api.POST("/projects", requireToken, h.createProject)
		api.PUT("/projects/:id", requireToken, h.updateProject)
		api.DELETE("/projects/:id", requireToken, h.deleteProject)

		api.POST("/contact", h.submitContact)
		// The admin dashboard is the only consumer of the two routes below,
		// but no token gate is applied: the upstream service shipped them
		// unprotected and that surface is reproduced unchanged here.
		api.GET("/contact", h.listContacts)
		api.PUT("/contact/:id/status", h.updateContactStatus)

		api.POST("/uploads", requireToken, h.uploadImage)
		api.GET("/uploads", requireToken, h.listUploads)
		api.DELETE("/uploads/*key", requireToken, h.deleteUpload)

		api.GET("/health", h.health)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Portfolio API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.opts.Environment,
	})
}

// serverError logs err and responds with the 500 envelope. The error detail is
// only echoed to the client outside production.
func (h *Handler) serverError(c *gin.Context, message string, err error) {
	h.logger.WithError(err).Error(message)

	body := gin.H{
		"success": false,
		"message": message,
	}
	if h.opts.Environment != "production" && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
