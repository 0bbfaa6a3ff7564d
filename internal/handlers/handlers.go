package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/loader"
	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/visits"
)

// Options configures the routes.
type Options struct {
	Title        string
	DefaultEmail string
	// Visits is optional; nil disables tracking.
	Visits *visits.Store
	// Now is the clock used for the experience summary.
	Now func() time.Time
}

// SetupRoutes configures all routes and returns the engine.
func SetupRoutes(l *loader.Loader, r *render.Renderer, opts Options) *gin.Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), requestID())
	if opts.Visits != nil {
		engine.Use(visits.Middleware(opts.Visits))
	}
	engine.SetHTMLTemplate(r.Template())

	page := NewPageHandler(l, opts)

	engine.GET("/", page.Page)

	sections := engine.Group("/sections")
	sections.GET("/basic-info", page.BasicInfo)
	sections.GET("/projects", page.Projects)
	sections.GET("/projects/rows", page.ProjectRows)
	sections.GET("/experience", page.Experience)
	sections.GET("/skills", page.Skills)

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	engine.StaticFS("/static", http.FS(render.Static()))

	return engine
}

// RequestIDHeader carries the per-request ID.
const RequestIDHeader = "X-Request-ID"

// requestID tags every request with a UUID, reusing one sent by a proxy.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(loader.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
