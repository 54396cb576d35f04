// Package logger builds the service-wide zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const productionEnv = "production"

// New returns a logger tuned to the environment: JSON output at info level
// in production, colored console output at debug level everywhere else.
func New(environment string) (*zap.Logger, error) {
	var cfg zap.Config
	if environment == productionEnv {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg.Build(zap.AddCaller())
}
