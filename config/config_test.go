package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are applied when no env is set.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "APP_DEBUG", "REQUEST_TIMEOUT", "RATE_LIMIT_PER_MINUTE", "LOG_LEVEL", "LOG_PRETTY"} {
		_ = os.Unsetenv(k)
	}

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Server.Debug {
		t.Fatalf("debug must be off by default")
	}
	if AppConfig.Server.RequestTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", AppConfig.Server.RequestTimeout)
	}
	if AppConfig.RateLimit.PerMinute != 60 {
		t.Fatalf("expected 60 req/min, got %d", AppConfig.RateLimit.PerMinute)
	}
	if AppConfig.Log.Level != "info" || AppConfig.Log.Pretty {
		t.Fatalf("unexpected log defaults: %+v", AppConfig.Log)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("LOG_LEVEL", "warn")

	LoadConfig()

	if AppConfig.Server.Port != "9090" || !AppConfig.Server.Debug || AppConfig.Server.RequestTimeout != 2*time.Second {
		t.Fatalf("unexpected server config: %+v", AppConfig.Server)
	}
	if AppConfig.RateLimit.PerMinute != 5 {
		t.Fatalf("unexpected rate limit: %d", AppConfig.RateLimit.PerMinute)
	}
	// debug wins over LOG_LEVEL
	if AppConfig.Log.Level != "debug" {
		t.Fatalf("expected debug level in debug mode, got %q", AppConfig.Log.Level)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
