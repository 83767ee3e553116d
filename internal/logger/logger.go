package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config 日志配置
type Config struct {
	Format string    // "console" 或 "json"
	Output io.Writer // 默认 os.Stderr，stdout 只留给推荐结果
}

var log = newLogger(Config{})

func newLogger(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	out := cfg.Output
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	return zerolog.New(out).With().Timestamp().Logger()
}

// Init 重新配置全局日志
func Init(cfg Config) {
	log = newLogger(cfg)
}

// SetDebug 设置是否开启调试模式
func SetDebug(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Info 打印信息日志
func Info(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

// Debug 打印调试日志
func Debug(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

// Error 打印错误日志
func Error(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

// Fatal 打印错误日志并退出
func Fatal(format string, v ...interface{}) {
	log.Fatal().Msgf(format, v...)
}

// With 返回带固定字段的子 logger，用于单次推荐的结构化日志
func With(fields map[string]interface{}) zerolog.Logger {
	return log.With().Fields(fields).Logger()
}

func init() {
	SetDebug(false)
}
