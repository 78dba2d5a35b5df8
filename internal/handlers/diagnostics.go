package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifestory-backend/internal/db"
	"github.com/yungbote/lifestory-backend/internal/platform/logger"
)

const diagErrorLimit = 60

type DiagnosticsHandler struct {
	log   *logger.Logger
	mongo *db.MongoService
}

func NewDiagnosticsHandler(log *logger.Logger, mongo *db.MongoService) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		log:   log.With("handler", "DiagnosticsHandler"),
		mongo: mongo,
	}
}

// Root is the liveness probe.
func (h *DiagnosticsHandler) Root(c *gin.Context) {
	RespondOK(c, gin.H{"message": "LifeStory Backend is running"})
}

// Test reports best-effort database connectivity. Connectivity
// problems come back as payload fields, never as an HTTP error.
func (h *DiagnosticsHandler) Test(c *gin.Context) {
	payload := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	if !h.mongo.Configured() {
		RespondOK(c, payload)
		return
	}
	payload["database_url"] = "✅ Set"
	payload["database_name"] = h.mongo.Name()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.mongo.Ping(ctx); err != nil {
		payload["database"] = "❌ Error: " + truncate(err.Error(), diagErrorLimit)
		RespondOK(c, payload)
		return
	}
	payload["database"] = "✅ Connected & Working"
	payload["connection_status"] = "Connected"

	names, err := h.mongo.CollectionNames(ctx)
	if err != nil {
		payload["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), diagErrorLimit)
	} else if names != nil {
		payload["collections"] = names
	}
	RespondOK(c, payload)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
