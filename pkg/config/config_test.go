package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "ALLOWED_ORIGINS", "DATASET_SOURCE", "SESSION_SECRET", "SESSION_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Port != "8080" || cfg.Environment != "development" || cfg.DatasetSource != SourceSample {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("SessionTTL = %v", cfg.SessionTTL)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:8081"}) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DATASET_SOURCE", SourcePostgres)
	t.Setenv("SESSION_TTL_MINUTES", "15")

	cfg := LoadConfig()
	if cfg.Port != "9090" || cfg.DatasetSource != SourcePostgres {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != 15*time.Minute {
		t.Fatalf("SessionTTL = %v", cfg.SessionTTL)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestGetEnvIntFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_MINUTES", "-3")
	if got := getEnvInt("SESSION_TTL_MINUTES", 60); got != 60 {
		t.Fatalf("getEnvInt = %d", got)
	}
	t.Setenv("SESSION_TTL_MINUTES", "abc")
	if got := getEnvInt("SESSION_TTL_MINUTES", 60); got != 60 {
		t.Fatalf("getEnvInt = %d", got)
	}
}
