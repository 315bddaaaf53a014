package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/homeloan/config"
	"github.com/rs/zerolog"
)

// current holds the active logger. Init swaps in a new one, so loggers
// handed out earlier stay valid and are never written to.
var (
	current atomic.Pointer[zerolog.Logger]
	mu      sync.Mutex
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Init configures the global logger from cfg, writing to stdout.
//
// Fields used:
//   - Level: debug|info|warn|error (default: info)
//   - Pretty: human-readable console output instead of JSON
func Init(cfg config.LogConfig) {
	InitWithWriter(os.Stdout, cfg)
}

// InitWithWriter is Init with an explicit destination, used to capture logs.
func InitWithWriter(out io.Writer, cfg config.LogConfig) {
	mu.Lock()
	defer mu.Unlock()
	current.Store(build(out, cfg))
}

func build(out io.Writer, cfg config.LogConfig) *zerolog.Logger {
	w := out
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	lg := zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(cfg.Level))
	return &lg
}

// L returns the global logger. Before Init is called it falls back to
// LOG_LEVEL and LOG_PRETTY from the environment.
func L() *zerolog.Logger {
	if lg := current.Load(); lg != nil {
		return lg
	}

	mu.Lock()
	defer mu.Unlock()
	if lg := current.Load(); lg != nil {
		return lg
	}
	lg := build(os.Stdout, config.LogConfig{
		Level:  getenv("LOG_LEVEL", "info"),
		Pretty: strings.EqualFold(getenv("LOG_PRETTY", "false"), "true"),
	})
	current.Store(lg)
	return lg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
