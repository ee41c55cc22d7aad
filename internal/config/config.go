package config

import (
	"os"
	"strings"
)

// AppConfig carries the runtime settings of the server. Everything comes
// from the environment with workable defaults, so a bare `go run` serves the
// bundled client on :3000.
type AppConfig struct {
	ListenAddr   string
	AllowOrigins string
	StaticDir    string
}

func Load() *AppConfig {
	cfg := &AppConfig{
		ListenAddr:   ":3000",
		AllowOrigins: "*",
		StaticDir:    "./web",
	}

	if v := strings.TrimSpace(os.Getenv("CHESSX_ADDR")); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSX_ALLOW_ORIGINS")); v != "" {
		cfg.AllowOrigins = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSX_STATIC_DIR")); v != "" {
		cfg.StaticDir = v
	}

	return cfg
}
