// Package logger builds the zap logger used by the tafqeet command.
// The converter itself never logs; only the command and the sheet filler do.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing entries at or above level to w.
// Valid levels are debug, info, warn and error.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

// Level returns the level the command runs at: debug when verbose,
// the configured level otherwise.
func Level(configured string, verbose bool) string {
	if verbose {
		return zapcore.DebugLevel.String()
	}
	return configured
}
