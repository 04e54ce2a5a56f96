package main

import (
	"fmt"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
)

type config struct {
	Logger    log.Kind
	LogLevel  slog.Level
	Canonical bool
	Debug     bool
	Inspect   bool
}

func defaultConfig() config {
	return config{
		Logger:   log.KindDefault,
		LogLevel: slog.LevelInfo,
	}
}

type fileConfig struct {
	Logger    string `toml:"logger"`
	LogLevel  string `toml:"log_level"`
	Canonical bool   `toml:"canonical"`
	Debug     bool   `toml:"debug"`
	Inspect   bool   `toml:"inspect"`
}

// loadConfig applies the keys defined in the TOML file at path over cfg.
func loadConfig(path string, cfg config) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("load config %q: %w", path, err)))
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return config{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("load config %q: unknown key %q", path, undec[0].String()))
	}

	if meta.IsDefined("logger") {
		cfg.Logger = log.Kind(strings.TrimSpace(raw.Logger))
	}
	if meta.IsDefined("log_level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(raw.LogLevel))); err != nil {
			return config{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("parse log_level: %w", err)))
		}
	}
	if meta.IsDefined("canonical") {
		cfg.Canonical = raw.Canonical
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	if meta.IsDefined("inspect") {
		cfg.Inspect = raw.Inspect
	}
	return cfg, nil
}
