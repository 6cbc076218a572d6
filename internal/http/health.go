package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pingTimeout caps how long /health waits for the database.
const pingTimeout = 2 * time.Second

// Pinger is satisfied by *database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      Pinger
	version string
}

func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// checkDatabase reports the database check result and whether it passed.
// A missing database is reported but does not fail the check.
func (h *HealthController) checkDatabase(ctx context.Context) (string, bool) {
	if h.db == nil {
		return "not configured", true
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}

// Status answers 200 when every check passes and 503 otherwise.
func (h *HealthController) Status(c *gin.Context) {
	result, ok := h.checkDatabase(c.Request.Context())

	resp := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  map[string]string{"database": result},
	}
	code := http.StatusOK
	if !ok {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.IndentedJSON(code, resp)
}
