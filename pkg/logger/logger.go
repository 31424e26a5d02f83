// Package logger builds the slog loggers used across the toolkit on top of
// charmbracelet/log.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/toolkit/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoTxtColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func levelStyle(icon string, color lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(icon).
		Bold(true).
		Padding(0, 1).
		Foreground(color)
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.ErrorLevel] = levelStyle("❌", errorTxtColor)
	s.Levels[log.InfoLevel] = levelStyle("ℹ️", infoTxtColor)
	s.Levels[log.WarnLevel] = levelStyle("⚠️", warnTxtColor)
	s.Levels[log.DebugLevel] = levelStyle("🐛", debugTxtColor)

	keys := map[string]lipgloss.AdaptiveColor{
		"error":    errorTxtColor,
		"warn":     warnTxtColor,
		"info":     infoTxtColor,
		"debug":    debugTxtColor,
		"prefix":   debugTxtColor,
		"caller":   debugTxtColor,
		"time":     debugTxtColor,
		"currency": infoTxtColor,
		"service":  warnTxtColor,
	}
	for key, color := range keys {
		s.Keys[key] = lipgloss.NewStyle().Foreground(color)
		s.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return s
}

// New returns a logger writing to w, configured from cfg. A nil cfg uses
// text output at info level.
func New(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}
	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level < 0,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	l.SetStyles(styles())
	return slog.New(l)
}

// Setup builds a stderr logger from cfg and installs it as the slog default.
func Setup(cfg *config.Log) *slog.Logger {
	l := New(cfg, os.Stderr)
	slog.SetDefault(l)
	return l
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDefault returns l, or slog.Default() when l is nil.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
