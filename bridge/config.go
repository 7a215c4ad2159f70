package bridge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/viant/afs"
	"github.com/viant/nlgbridge"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. NLG_BRIDGE_LOG_LEVEL.
const EnvPrefix = "NLG_BRIDGE_"

// Config holds the bridge configuration.
type Config struct {
	Gateway  nlgbridge.GatewayOptions `yaml:"gateway" koanf:"gateway"`
	Log      LogConfig                `yaml:"log" koanf:"log"`
	Shutdown ShutdownConfig           `yaml:"shutdown" koanf:"shutdown"`
}

// ShutdownConfig bounds the gateway drain after stdin closes.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

func defaultConfig() *Config {
	return &Config{
		Gateway: nlgbridge.GatewayOptions{
			Name:          "NLG",
			Version:       "0.1",
			Host:          "127.0.0.1",
			SSEURI:        "/sse",
			SSEMessageURI: "/message",
			StreamableURI: "/rpc",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Shutdown: ShutdownConfig{
			Timeout: 2 * time.Second,
		},
	}
}

// LoadConfig builds the configuration: compiled defaults, then the YAML
// document at configURL (any afs supported URL, optional), then environment
// variables prefixed with EnvPrefix.
func LoadConfig(ctx context.Context, configURL string) (*Config, error) {
	cfg := defaultConfig()
	if configURL != "" {
		data, err := afs.New().DownloadWithURL(ctx, configURL)
		if err != nil {
			return nil, fmt.Errorf("load config %v: %w", configURL, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %v: %w", configURL, err)
		}
	}

	k := koanf.New(".")
	// NLG_BRIDGE_GATEWAY_HOST -> gateway.host
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Shutdown.Timeout <= 0 {
		return nil, fmt.Errorf("invalid shutdown timeout: %v", cfg.Shutdown.Timeout)
	}
	return cfg, nil
}

// Apply overrides configuration with command line options.
func (c *Config) Apply(options *Options) {
	if options.Host != "" {
		c.Gateway.Host = options.Host
	}
	if options.Verbose {
		c.Log.Level = "debug"
	}
}
