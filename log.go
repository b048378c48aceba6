package aoc

import (
	"go.uber.org/zap"
)

// newLogger returns a console logger on stderr at level lvl.
func newLogger(lvl zap.AtomicLevel) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	return MustGet(cfg.Build()).Sugar()
}
