package config

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger 按 LOG_LEVEL 和 LOG_FORMAT 创建 logger
func (cfg *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("日志级别不合法: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Log.Format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("日志格式不合法: %s", cfg.Log.Format)
	}
}
