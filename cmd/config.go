package cmd

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/elbow-jason/graphql-parser/pkg/astparser"
	"github.com/elbow-jason/graphql-parser/pkg/astprinter"
)

type config struct {
	style     astprinter.Style
	maxDepth  int
	logLevel  zapcore.Level
	cacheSize int
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		style: astprinter.Style{
			IndentWidth:        v.GetInt(keyIndent),
			UseTabs:            v.GetBool(keyTabs),
			MultilineArguments: v.GetBool(keyMultilineArguments),
		},
		maxDepth:  v.GetInt(keyMaxDepth),
		cacheSize: v.GetInt(keyCacheSize),
	}

	if cfg.style.IndentWidth < 0 {
		return config{}, errors.Errorf("%s must not be negative, got %d", keyIndent, cfg.style.IndentWidth)
	}
	if err := cfg.logLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return config{}, errors.Wrapf(err, "invalid %s", keyLogLevel)
	}
	return cfg, nil
}

// newLogger builds a zap production logger writing to stderr at the configured level
func (c config) newLogger() (*zap.Logger, abstractlogger.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(c.logLevel)
	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, nil, errors.Wrap(err, "building logger")
	}
	return zapLogger, abstractlogger.NewZapLogger(zapLogger, abstractLevel(c.logLevel)), nil
}

func (c config) newParser(logger abstractlogger.Logger) *astparser.Parser {
	return astparser.NewParser(
		astparser.WithMaxDepth(c.maxDepth),
		astparser.WithLogger(logger),
	)
}

func abstractLevel(level zapcore.Level) abstractlogger.Level {
	switch level {
	case zapcore.DebugLevel:
		return abstractlogger.DebugLevel
	case zapcore.InfoLevel:
		return abstractlogger.InfoLevel
	case zapcore.WarnLevel:
		return abstractlogger.WarnLevel
	case zapcore.ErrorLevel:
		return abstractlogger.ErrorLevel
	case zapcore.PanicLevel, zapcore.DPanicLevel:
		return abstractlogger.PanicLevel
	default:
		return abstractlogger.FatalLevel
	}
}
