package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifestory-backend/internal/platform/logger"
	"github.com/yungbote/lifestory-backend/internal/services"
	"github.com/yungbote/lifestory-backend/internal/types"
)

type SeasonHandler struct {
	log           *logger.Logger
	seasonService services.SeasonService
}

func NewSeasonHandler(log *logger.Logger, seasonService services.SeasonService) *SeasonHandler {
	return &SeasonHandler{
		log:           log.With("handler", "SeasonHandler"),
		seasonService: seasonService,
	}
}

func (h *SeasonHandler) List(c *gin.Context) {
	seasons, err := h.seasonService.List(c.Request.Context())
	if err != nil {
		h.log.Error("List seasons failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, seasons)
}

func (h *SeasonHandler) Create(c *gin.Context) {
	var in types.SeasonInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondValidationError(c, err)
		return
	}
	season, err := h.seasonService.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Error("Create season failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, season)
}

func (h *SeasonHandler) Update(c *gin.Context) {
	var in types.SeasonInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondValidationError(c, err)
		return
	}
	season, err := h.seasonService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, season)
}

func (h *SeasonHandler) Delete(c *gin.Context) {
	if err := h.seasonService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}
