package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifestory-backend/internal/platform/logger"
	"github.com/yungbote/lifestory-backend/internal/services"
	"github.com/yungbote/lifestory-backend/internal/types"
)

type EpisodeHandler struct {
	log            *logger.Logger
	episodeService services.EpisodeService
}

func NewEpisodeHandler(log *logger.Logger, episodeService services.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{
		log:            log.With("handler", "EpisodeHandler"),
		episodeService: episodeService,
	}
}

func (h *EpisodeHandler) List(c *gin.Context) {
	unsorted, _ := strconv.ParseBool(c.Query("unsorted"))
	episodes, err := h.episodeService.List(c.Request.Context(), services.EpisodeFilter{
		SeasonID: c.Query("season_id"),
		Unsorted: unsorted,
	})
	if err != nil {
		h.log.Error("List episodes failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, episodes)
}

func (h *EpisodeHandler) Create(c *gin.Context) {
	var in types.EpisodeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondValidationError(c, err)
		return
	}
	episode, err := h.episodeService.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Error("Create episode failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, episode)
}

func (h *EpisodeHandler) Update(c *gin.Context) {
	var in types.EpisodeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondValidationError(c, err)
		return
	}
	episode, err := h.episodeService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, episode)
}

func (h *EpisodeHandler) Delete(c *gin.Context) {
	if err := h.episodeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}
