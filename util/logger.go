package util

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ProdEnv = "prod"

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// InitializeLogger builds the process-wide logger. Production gets JSON at info
// level, everything else a colored console logger at debug level.
func InitializeLogger(env string) {
	var cfg zap.Config

	if env == ProdEnv {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger = built
}

// GetLogger returns the sugared process logger, initializing a development
// logger on first use if InitializeLogger was never called.
func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		if logger == nil {
			InitializeLogger("")
		}
	})
	return logger.Sugar()
}

// SyncLogger flushes buffered log entries.
func SyncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}
