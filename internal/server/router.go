package server

import (
	"reflect"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/lifestory-backend/internal/handlers"
	"github.com/yungbote/lifestory-backend/internal/middleware"
)

type RouterConfig struct {
	DiagnosticsHandler *handlers.DiagnosticsHandler
	SeasonHandler      *handlers.SeasonHandler
	EpisodeHandler     *handlers.EpisodeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	registerJSONTagNames()

	router := gin.Default()

	// Cors: fully open, this is a personal-use tool.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))
	router.Use(middleware.RequestID())

	// Diagnostics
	router.GET("/", cfg.DiagnosticsHandler.Root)
	router.GET("/test", cfg.DiagnosticsHandler.Test)
	router.GET("/schema", cfg.DiagnosticsHandler.Schema)

	// Resources
	api := router.Group("/api")
	{
		api.GET("/seasons", cfg.SeasonHandler.List)
		api.POST("/seasons", cfg.SeasonHandler.Create)
		api.PATCH("/seasons/:id", cfg.SeasonHandler.Update)
		api.DELETE("/seasons/:id", cfg.SeasonHandler.Delete)

		api.GET("/episodes", cfg.EpisodeHandler.List)
		api.POST("/episodes", cfg.EpisodeHandler.Create)
		api.PATCH("/episodes/:id", cfg.EpisodeHandler.Update)
		api.DELETE("/episodes/:id", cfg.EpisodeHandler.Delete)
	}

	return router
}

// registerJSONTagNames makes validator report wire field names instead
// of Go struct field names in 422 detail.
func registerJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
