// Package logging оборачивает log/slog: имя компонента и логгер запроса в контексте.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Общие имена полей структурированных логов
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldAdapter    = "adapter"
	FieldOperation  = "operation"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldField      = "field"
)

// Стандартные имена компонентов
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentMCP     = "mcp"
	ComponentCLI     = "cli"
	ComponentTUI     = "tui"
	ComponentService = "service"
	ComponentTracing = "tracing"
)

// Logger slog.Logger с именем компонента
type Logger struct {
	*slog.Logger
	// base без атрибута component, от него строятся производные логгеры
	base      *slog.Logger
	component string
}

// Config настройки логгера
type Config struct {
	Level     slog.Level
	Format    string
	Component string
	Output    io.Writer
	Handler   slog.Handler
}

// DefaultConfig возвращает настройки по умолчанию. Вывод идет в stderr,
// stdout занят выводом CLI и stdio транспортом MCP.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Component: ComponentApp,
		Output:    os.Stderr,
	}
}

// New создает логгер по настройкам
func New(config Config) *Logger {
	handler := config.Handler
	if handler == nil {
		out := config.Output
		if out == nil {
			out = os.Stderr
		}
		opts := &slog.HandlerOptions{Level: config.Level}
		if strings.EqualFold(config.Format, "json") {
			handler = slog.NewJSONHandler(out, opts)
		} else {
			handler = slog.NewTextHandler(out, opts)
		}
	}

	component := config.Component
	if component == "" {
		component = ComponentApp
	}

	base := slog.New(handler)
	return &Logger{
		Logger:    base.With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *Logger {
	return New(Config{Output: io.Discard})
}

// ParseLevel переводит значение LOG_LEVEL в уровень slog, по умолчанию info
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With возвращает логгер с дополнительными атрибутами
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		base:      l.baseLogger().With(args...),
		component: l.component,
	}
}

// WithComponent возвращает логгер с другим именем компонента; атрибут component в записи один
func (l *Logger) WithComponent(component string) *Logger {
	base := l.baseLogger()
	return &Logger{
		Logger:    base.With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

func (l *Logger) baseLogger() *slog.Logger {
	if l.base != nil {
		return l.base
	}
	return l.Logger
}

// Component возвращает имя компонента
func (l *Logger) Component() string {
	return l.component
}

// SetDefault делает логгер глобальным для slog
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}

type contextKey struct{}

// WithContext кладет логгер в контекст
func WithContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext достает логгер из контекста
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// FromContextOr возвращает логгер из контекста или fallback, если его там нет
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return fallback
}
