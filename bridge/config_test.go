package bridge

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig(context.Background(), "")
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "127.0.0.1", cfg.Gateway.Host)
		assert.Equal(t, "NLG", cfg.Gateway.Name)
		assert.Equal(t, "/sse", cfg.Gateway.SSEURI)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 2*time.Second, cfg.Shutdown.Timeout)
	})

	t.Run("yaml file then env", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "bridge.yaml")
		document := "gateway:\n  host: 0.0.0.0\n  version: \"2.0\"\n  streamableURI: /stream\nlog:\n  level: debug\n  format: json\nshutdown:\n  timeout: 5s\n"
		if !assert.NoError(t, os.WriteFile(location, []byte(document), 0o644)) {
			return
		}
		t.Setenv("NLG_BRIDGE_LOG_LEVEL", "warn")
		t.Setenv("NLG_BRIDGE_SHUTDOWN_TIMEOUT", "750ms")

		cfg, err := LoadConfig(context.Background(), location)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "0.0.0.0", cfg.Gateway.Host)
		assert.Equal(t, "2.0", cfg.Gateway.Version)
		assert.Equal(t, "NLG", cfg.Gateway.Name)
		assert.Equal(t, "/stream", cfg.Gateway.StreamableURI)
		assert.Equal(t, "/sse", cfg.Gateway.SSEURI)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 750*time.Millisecond, cfg.Shutdown.Timeout)
	})

	t.Run("env host", func(t *testing.T) {
		t.Setenv("NLG_BRIDGE_GATEWAY_HOST", "localhost")
		cfg, err := LoadConfig(context.Background(), "")
		if assert.NoError(t, err) {
			assert.Equal(t, "localhost", cfg.Gateway.Host)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("NLG_BRIDGE_SHUTDOWN_TIMEOUT", "0s")
		_, err := LoadConfig(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestConfig_Apply(t *testing.T) {
	cfg := defaultConfig()
	cfg.Apply(&Options{Host: "0.0.0.0", Verbose: true})
	assert.Equal(t, "0.0.0.0", cfg.Gateway.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
}
