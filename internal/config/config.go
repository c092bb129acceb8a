package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAddr 默认监听地址
const DefaultAddr = "127.0.0.1:3000"

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	Events EventsConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr              string        `env:"PERSONS_ADDR" envDefault:"127.0.0.1:3000"`
	ReadHeaderTimeout time.Duration `env:"PERSONS_READ_HEADER_TIMEOUT" envDefault:"5s"`
	IdleTimeout       time.Duration `env:"PERSONS_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"PERSONS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins       []string      `env:"PERSONS_CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// EventsConfig 控制变更推送端点。
type EventsConfig struct {
	Enabled bool `env:"PERSONS_EVENTS_ENABLED" envDefault:"true"`
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	addr, err := resolveAddr(cfg.Server.Addr)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr
	cfg.Server.CORSOrigins = trimAll(cfg.Server.CORSOrigins)

	return &cfg, nil
}

// resolveAddr 兼容 PORT 变量：允许 "8080"、":8080" 或 "127.0.0.1:8080"。
func resolveAddr(addr string) (string, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return DefaultAddr, nil
		}
		return addr, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}
	if strings.Contains(port, ":") {
		return port, nil
	}
	return ":" + port, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
