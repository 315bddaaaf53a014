package app

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/homeloan/config"
	"github.com/guttosm/homeloan/internal/api"
	"github.com/guttosm/homeloan/internal/service"
)

// templateLoader is an indirection for unit testing; defaults to api.LoadTemplates.
var templateLoader = api.LoadTemplates

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Selects gin debug or release mode from config.AppConfig.Server.Debug.
//   - Parses the page templates.
//   - Wires the payment service into the HTTP handler and router.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templateLoader()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load templates: %w", err)
	}

	svc := service.NewPaymentService()
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, tmpl, cfg)

	api.NewHealthHandler(templatesReady(tmpl)).Register(router)

	// nothing holds external resources today; kept so main's shutdown path stays uniform
	cleanup := func() {}

	return router, cleanup, nil
}

func templatesReady(tmpl *template.Template) func() error {
	return func() error {
		if tmpl == nil || tmpl.Lookup(api.PageTemplate) == nil {
			return errors.New("page template not loaded")
		}
		return nil
	}
}
