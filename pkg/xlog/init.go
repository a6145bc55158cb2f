package xlog

import (
	"os"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FieldTimestamp = "@timestamp"
)

var gLogger Logger

func init() {
	gLogger = initLogger(envConfig())
}

// 日志配置, 环境变量控制
type logConfig struct {
	Level string `env:"GACTOR_LOG_LEVEL" envDefault:"debug"`
	Prod  bool   `env:"GACTOR_LOG_PROD"`
}

func getEncoder(isProd bool) zapcore.Encoder {
	// 使用ECS兼容的encoder格式
	withColor := !isProd
	config := ecsCompatibleEncoder(withColor)
	config.TimeKey = FieldTimestamp
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	if isProd {
		// prod: 默认使用json格式
		return zapcore.NewJSONEncoder(config)
	} else {
		// dev: 使用带颜色的终端格式
		return zapcore.NewConsoleEncoder(config)
	}
}

// Elastic Common Schema (ECS) 兼容的encoder格式, 便于日志被ELK归档
func ecsCompatibleEncoder(withColor bool) zapcore.EncoderConfig {
	return ecszap.EncoderConfig{
		// 这里只开放了和ECS无关的字段
		EnableName:       true,
		EncodeName:       zapcore.FullNameEncoder,
		EnableStackTrace: true,
		EnableCaller:     true,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      customLevelEncoder(withColor),
		EncodeDuration:   zapcore.StringDurationEncoder,
	}.ToZapCoreEncoderConfig()
}

func defaultOptions() []zap.Option {
	options := []zap.Option{
		zap.WithCaller(true),
		// DPanic时自动增加Stacktrace
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.DPanicLevel)),
	}
	return options
}

func initLogger(conf logConfig) Logger {
	writerSinker := zapcore.Lock(os.Stdout)
	logLvl := parseLevel(conf.Level)
	core := zapcore.NewCore(getEncoder(conf.Prod), writerSinker, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= logLvl
	}))
	return newLogger(zap.New(core, defaultOptions()...))
}
