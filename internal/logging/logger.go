// Package logging builds the console logger used by the ppw binaries.
// Every line starts with a bracketed level such as "[ INFO ]" or "[ ERROR ]"
// so operators and test scripts can grep for failures.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New
type Options struct {
	Verbose    bool      // enable debug level
	Timestamps bool      // prefix lines with an ISO8601 time
	Output     io.Writer // defaults to stdout
}

// New builds a console logger
func New(opts Options) *zap.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      bracketLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	if opts.Timestamps {
		encCfg.TimeKey = "ts"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), level)
	return zap.New(core)
}

func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[ " + strings.ToUpper(l.String()) + " ]")
}
