package logger

import (
	"io"
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzzap "github.com/hertz-contrib/logger/zap"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"panelbot/config"
)

// Init wires one zap core into both zap.L() and Hertz's hlog so the whole
// process logs to stdout plus a rotated file.
func Init(cfg *config.Config) func() {
	rotator := &lumberjack.Logger{
		Filename:   cfg.Log.Path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		Compress:   true,
	}

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Log.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encoderCfg)
	ws := zapcore.AddSync(io.MultiWriter(os.Stdout, rotator))

	log := zap.New(zapcore.NewCore(enc, ws, level), zap.AddCaller())
	zap.ReplaceGlobals(log)

	hlog.SetLogger(hertzzap.NewLogger(hertzzap.WithCores(hertzzap.CoreConfig{
		Enc: enc,
		Ws:  ws,
		Lvl: level,
	})))

	return func() {
		_ = log.Sync()
	}
}
