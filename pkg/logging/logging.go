// Package logging provides the process-wide zap logger. The default logger is
// a nop so library packages can log unconditionally; binaries call Initialize
// once at startup.
package logging

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction.
type Config struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // console or json
	File       string `mapstructure:"file"`   // optional rotating log file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

var (
	global atomic.Pointer[zap.Logger]
	once   sync.Once
)

func init() {
	global.Store(zap.NewNop())
}

// Initialize builds the global logger from cfg. Repeated calls are ignored.
func Initialize(cfg Config) {
	once.Do(func() {
		level := zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level.SetLevel(zap.InfoLevel)
		}

		encCfg := zap.NewDevelopmentEncoderConfig()
		var enc zapcore.Encoder
		if cfg.Format == "json" {
			encCfg = zap.NewProductionEncoderConfig()
			enc = zapcore.NewJSONEncoder(encCfg)
		} else {
			enc = zapcore.NewConsoleEncoder(encCfg)
		}

		cores := []zapcore.Core{
			zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level),
		}
		if cfg.File != "" {
			// lumberjack handles rotation and thread-safe writes.
			fileWriter := zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
			})
			fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
			cores = append(cores, zapcore.NewCore(fileEnc, fileWriter, level))
		}

		global.Store(zap.New(zapcore.NewTee(cores...)))
	})
}

// L returns the global logger.
func L() *zap.Logger {
	return global.Load()
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	global.Store(l)
}
