package api

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/homeloan/config"
	"github.com/guttosm/homeloan/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, Metrics, Timeout).
//   - Rate-limits the form and /api/v1 per client IP.
//   - Installs the page templates used by the loan form.
//   - Mounts the form (/), the JSON API (/api/v1), Swagger docs and /metrics.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - tmpl (*template.Template): Parsed page templates, see LoadTemplates.
//   - cfg (config.Config): Rate limit and request timeout settings.
func NewRouter(handler *Handler, tmpl *template.Template, cfg config.Config) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.Metrics(),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)

	router.SetHTMLTemplate(tmpl)

	// ─── Swagger & metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// quoting routes share one limiter; probes, docs and metrics stay unlimited
	quoting := router.Group("/", middleware.RateLimiter(cfg.RateLimit.PerMinute))

	// ─── Loan form ────────────────────────────────
	quoting.GET("/", handler.ShowForm)
	quoting.POST("/", handler.SubmitForm)

	// ─── API v1 ───────────────────────────────────
	v1 := quoting.Group("/api/v1")
	{
		v1.POST("/payment", handler.CreatePayment)
	}

	return router
}
