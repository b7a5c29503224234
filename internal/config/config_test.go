package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/recruitment")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOKEN_TTL", "12h")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
	if cfg.KafkaTopic != "recruitment-events" {
		t.Errorf("KafkaTopic = %q", cfg.KafkaTopic)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() without DATABASE_URL should fail")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/recruitment")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() without JWT_SECRET should fail")
	}
}

func TestLoadConfig_BadPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/recruitment")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() with non-numeric PORT should fail")
	}
}
