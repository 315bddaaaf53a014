package main

//
//  @title           homeloan API
//  @version         1.0
//  @description     Home-loan monthly payment calculator.
//  @termsOfService  https://github.com/guttosm/homeloan
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/homeloan
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        payment
//  @tag.description Monthly payment calculation
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/homeloan/config"
	_ "github.com/guttosm/homeloan/docs" // swagger docs
	"github.com/guttosm/homeloan/internal/app"
	"github.com/guttosm/homeloan/internal/batch"
	"github.com/guttosm/homeloan/internal/logger"
	"github.com/guttosm/homeloan/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then drains in-flight
// requests and runs cleanup.
//
// Parameters:
//   - ctx (context.Context): Parent context for the shutdown deadline.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Callback releasing application resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runBatch quotes every scenario in file and writes the CSV result to out.
// SIGINT and SIGTERM cancel the run.
func runBatch(ctx context.Context, file string, out io.Writer, parallel int) error {
	if file == "" {
		return errors.New("--file is required in batch mode")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := batch.ProcessFile(ctx, file, out, service.NewPaymentService(), parallel)
	if err != nil {
		return err
	}
	logger.L().Info().Int("quoted", sum.Quoted).Int("rejected", sum.Rejected).Msg("batch completed")
	return nil
}

// main is the entry point of the homeloan application.
//
// Modes (selected via --mode flag):
//   - serve: Starts the web form, JSON API, health probes and metrics.
//   - batch: Quotes every row of a CSV file and writes the results to stdout.
//
// Flags:
//   - --mode:     Execution mode ("serve" or "batch"). Default: "serve".
//   - --file:     CSV file with loan scenarios (batch mode).
//   - --parallel: Rows quoted concurrently (0=auto up to CPU, max 8).
//   - --port:     Port for the server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	mode := flag.String("mode", "serve", "Mode: serve or batch")
	file := flag.String("file", "", "CSV file with loan_amount,interest_rate,loan_term_years rows")
	parallel := flag.Int("parallel", 0, "How many rows to quote concurrently (0=auto up to CPU, max 8)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for serve mode")
	flag.Parse()

	switch *mode {
	case "batch":
		// stdout carries the CSV result; logs go to stderr
		logger.InitWithWriter(os.Stderr, config.AppConfig.Log)
		if err := runBatch(ctx, *file, os.Stdout, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("batch failed")
		}

	case "serve":
		logger.Init(config.AppConfig.Log)
		logger.L().Info().Msg("starting server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.Init(config.AppConfig.Log)
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
