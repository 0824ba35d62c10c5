package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booktrack/internal/database"
)

// HealthResponse reports whether the API and its SQLite store are usable.
type HealthResponse struct {
	Status    string            `json:"status"`
	CheckedAt string            `json:"checked_at"`
	Version   string            `json:"version,omitempty"`
	Checks    map[string]string `json:"checks"`
}

// HealthController answers liveness probes. Every library endpoint fails
// hard without the database, so an unreachable store reports the whole
// service unhealthy; a deployment without a store stays healthy.
type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	dbState, dbOK := h.databaseState()

	status := "healthy"
	code := http.StatusOK
	if !dbOK {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.IndentedJSON(code, HealthResponse{
		Status:    status,
		CheckedAt: time.Now().Format(time.RFC3339),
		Version:   h.version,
		Checks:    map[string]string{"database": dbState},
	})
}

func (h *HealthController) databaseState() (string, bool) {
	if h.db == nil {
		return "not configured", true
	}
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return "error: " + err.Error(), false
	}
	if err := sqlDB.Ping(); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}
