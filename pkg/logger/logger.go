package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 未初始化时退化为空实现，避免测试里到处判空
var log = zap.NewNop()

// Init 按环境初始化全局日志
// production 输出 JSON，其余环境输出带颜色的开发格式
func Init(env, level string) error {
	var lv zapcore.Level
	switch level {
	case "debug":
		lv = zapcore.DebugLevel
	case "warn":
		lv = zapcore.WarnLevel
	case "error":
		lv = zapcore.ErrorLevel
	default:
		lv = zapcore.InfoLevel
	}

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lv)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	log = l
	zap.ReplaceGlobals(l)
	return nil
}

// L 返回全局日志实例
func L() *zap.Logger {
	return log
}
