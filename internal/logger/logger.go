package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Mukunt07/subramaniya-mess/internal/conf"
)

// NewLogger builds the application logger from config. In dev mode logs also
// go to stdout in console encoding; otherwise everything is JSON to the
// rotated file.
func NewLogger(appConfig *conf.AppConfig) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(appConfig.LogConfig.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   appConfig.LogConfig.Filename,
		MaxSize:    appConfig.LogConfig.MaxSize,
		MaxAge:     appConfig.LogConfig.MaxAge,
		MaxBackups: appConfig.LogConfig.MaxBackups,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level),
	}
	if appConfig.Mode == "dev" {
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).
		Named(appConfig.Name)

	cleanup := func() {
		_ = logger.Sync()
	}
	return logger, cleanup, nil
}
