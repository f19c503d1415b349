package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"counterhub/config"
	"counterhub/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Config *config.Config
}

// New creates and initializes slog.Logger.
// When env.log.file.path is set, records are written to stdout and to a rotating file.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if rotator := newRotator(params.Config.Env.Log.File); rotator != nil {
		out = io.MultiWriter(os.Stdout, rotator)
		if params.Lc != nil {
			params.Lc.Append(fx.StopHook(rotator.Close))
		}
	}

	return newLogger(out, level, params.Config.Env.Log.Pretty), nil
}

func newLogger(out io.Writer, level slog.Level, pretty bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if pretty {
		return slog.New(slog.NewTextHandler(out, opts))
	}

	return slog.New(slog.NewJSONHandler(out, opts))
}

func newRotator(cfg config.LogFile) *lumberjack.Logger {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
