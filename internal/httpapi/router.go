package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Logger          *slog.Logger
	ScheduleHandler *ScheduleHandler
	CatalogHandler  *CatalogHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(RequestLogger(cfg.Logger))
	}

	r.GET("/healthz", HealthCheck)

	api := r.Group("/api")
	{
		if cfg.ScheduleHandler != nil {
			api.POST("/schedule", cfg.ScheduleHandler.Schedule)
			api.POST("/plan", cfg.ScheduleHandler.Plan)
		}
		if cfg.CatalogHandler != nil {
			api.GET("/courses", cfg.CatalogHandler.ListCourses)
			api.GET("/courses/:id", cfg.CatalogHandler.GetCourse)
			api.GET("/classes/:id", cfg.CatalogHandler.GetClass)
		}
	}
	return r
}

// RequestLogger logs one line per request, at warn for 4xx and error for 5xx.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
