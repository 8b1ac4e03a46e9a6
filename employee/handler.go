package employee

import (
	"context"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/handsoncoder/employee-producer/server"
	"github.com/handsoncoder/employee-producer/validation"
)

// HeaderFallback is set to "true" on responses carrying a degraded record.
const HeaderFallback = "X-Fallback"

const maxNameLength = 64

var namePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Getter is the lookup surface the handler needs.
type Getter interface {
	Get(ctx context.Context, name string) (Result, error)
	Default(ctx context.Context) (Result, error)
}

// Handler serves employee records over HTTP.
type Handler struct {
	svc Getter
}

// NewHandler creates a handler backed by svc.
func NewHandler(svc Getter) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the employee routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/employee", h.GetDefault)
	r.GET("/employee/:name", h.GetByName)
}

// GetDefault handles GET /employee.
func (h *Handler) GetDefault(c *gin.Context) {
	res, err := h.svc.Default(c.Request.Context())
	h.respond(c, res, err)
}

// GetByName handles GET /employee/:name.
func (h *Handler) GetByName(c *gin.Context) {
	name := c.Param("name")
	err := validation.New().
		Required("name", name).
		MaxLength("name", name, maxNameLength).
		Pattern("name", name, namePattern).
		Validate()
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	res, err := h.svc.Get(c.Request.Context(), name)
	h.respond(c, res, err)
}

func (h *Handler) respond(c *gin.Context, res Result, err error) {
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if res.Degraded {
		c.Header(HeaderFallback, "true")
	}
	c.JSON(http.StatusOK, res.Employee)
}
