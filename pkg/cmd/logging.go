package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/siyuan-infoblox/order-imports/pkg/errors"
)

func setupLogging(w io.Writer, level, format string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf(errors.ErrMsgInvalidLogLevel, level)
	}

	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	switch format {
	case "console":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf(errors.ErrMsgInvalidLogFormat, format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
