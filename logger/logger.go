// Package logger 提供带组件名的结构化日志
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger 在 slog.Logger 上附加组件名
type Logger struct {
	*slog.Logger
}

// New 创建的日志共用此级别
var level = new(slog.LevelVar)

var output io.Writer = os.Stdout

// New 创建指定组件的日志，输出到 stdout，级别跟随 SetLevel
func New(component string) *Logger {
	return NewWithWriter(component, output, level)
}

// SetLevel 设置 New 创建的日志的级别，已创建的日志同样生效
func SetLevel(l slog.Level) {
	level.Set(l)
}

// NewWithWriter 创建写入 w 的日志，测试中可传入 bytes.Buffer
func NewWithWriter(component string, w io.Writer, lv slog.Leveler) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})
	return &Logger{
		Logger: slog.New(handler).With("component", component),
	}
}

// Discard 丢弃所有输出
func Discard() *Logger {
	return NewWithWriter("discard", io.Discard, slog.LevelError+1)
}

// With 返回附加字段的新日志
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// Failure 记录错误，err 为 nil 时不输出
func (l *Logger) Failure(ctx context.Context, msg string, err error, args ...any) {
	if err == nil {
		return
	}
	l.Logger.ErrorContext(ctx, msg, append([]any{"error", err}, args...)...)
}

// ParseLevel 按服务器模式返回日志级别
func ParseLevel(mode string) slog.Level {
	switch strings.ToLower(mode) {
	case "debug":
		return slog.LevelDebug
	case "release":
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// SetDefault 设置全局默认日志
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
