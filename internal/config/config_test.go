package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_URL", "")
	t.Setenv("INGEST_WORKERS", "")
	t.Setenv("CRICSHEET_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected default app env: %q", cfg.AppEnv)
	}
	if cfg.ServiceName != "cricketstats" {
		t.Fatalf("unexpected default service name: %q", cfg.ServiceName)
	}
	if cfg.IngestWorkers != 4 {
		t.Fatalf("unexpected default ingest workers: %d", cfg.IngestWorkers)
	}
	if cfg.CricsheetBaseURL != "https://cricsheet.org/downloads" {
		t.Fatalf("unexpected default cricsheet base url: %q", cfg.CricsheetBaseURL)
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "-5s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-positive CACHE_TTL")
		}
	})
}

func TestLoad_IngestWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("INGEST_WORKERS", "many")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid INGEST_WORKERS")
		}
	})

	t.Run("below minimum", func(t *testing.T) {
		t.Setenv("INGEST_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for INGEST_WORKERS=0")
		}
	})
}

func TestLoad_CricsheetConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CRICSHEET_TIMEOUT", "30s")
	t.Setenv("CRICSHEET_MAX_RETRIES", "3")
	t.Setenv("CRICSHEET_CIRCUIT_FAILURE_COUNT", "7")
	t.Setenv("CRICSHEET_CIRCUIT_OPEN_TIMEOUT", "20s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CricsheetTimeout != 30*time.Second {
		t.Fatalf("unexpected cricsheet timeout: %s", cfg.CricsheetTimeout)
	}
	if cfg.CricsheetMaxRetries != 3 {
		t.Fatalf("unexpected cricsheet max retries: %d", cfg.CricsheetMaxRetries)
	}
	if cfg.CricsheetCircuitFailureCount != 7 {
		t.Fatalf("unexpected circuit failure count: %d", cfg.CricsheetCircuitFailureCount)
	}
	if cfg.CricsheetCircuitOpenTimeout != 20*time.Second {
		t.Fatalf("unexpected circuit open timeout: %s", cfg.CricsheetCircuitOpenTimeout)
	}
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "cricketstats-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "cricketstats-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}
