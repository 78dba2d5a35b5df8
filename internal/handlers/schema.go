package handlers

import (
	"github.com/gin-gonic/gin"
)

// seasonSchema and episodeSchema describe the resource shapes for
// client-side form generation: field names, types and constraints,
// in JSON-schema style.
var seasonSchema = gin.H{
	"title": "Season",
	"type":  "object",
	"properties": gin.H{
		"title":       gin.H{"type": "string"},
		"description": gin.H{"type": "string", "nullable": true},
		"start_date":  gin.H{"type": "string", "format": "date", "nullable": true},
		"end_date":    gin.H{"type": "string", "format": "date", "nullable": true},
		"is_active":   gin.H{"type": "boolean", "default": true},
	},
	"required": []string{"title"},
}

var episodeSchema = gin.H{
	"title": "Episode",
	"type":  "object",
	"properties": gin.H{
		"title":  gin.H{"type": "string"},
		"date":   gin.H{"type": "string", "format": "date"},
		"rating": gin.H{"type": "integer", "minimum": 1, "maximum": 10},
		"plot_points": gin.H{
			"type":    "array",
			"items":   gin.H{"type": "string"},
			"default": []string{},
		},
		"season_id": gin.H{"type": "string", "nullable": true},
	},
	"required": []string{"title", "date", "rating"},
}

// Schema exposes the resource shapes so clients can mirror validation.
func (h *DiagnosticsHandler) Schema(c *gin.Context) {
	RespondOK(c, gin.H{
		"season":  seasonSchema,
		"episode": episodeSchema,
	})
}
