package cmd

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/elbow-jason/graphql-parser/pkg/astparser"
)

type grammar int

const (
	grammarQuery grammar = iota
	grammarSchema
)

func (g grammar) String() string {
	if g == grammarSchema {
		return "schema"
	}
	return "query"
}

func (g grammar) description() string {
	if g == grammarSchema {
		return "type system document"
	}
	return "executable document"
}

func parseGrammar(s string) (grammar, bool) {
	switch s {
	case "query":
		return grammarQuery, true
	case "schema":
		return grammarSchema, true
	default:
		return grammarQuery, false
	}
}

// environment carries what every command needs, close flushes the logger
type environment struct {
	config config
	zap    *zap.Logger
	log    abstractlogger.Logger
	parser *astparser.Parser
}

func newEnvironment(v *viper.Viper) (*environment, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}
	zapLogger, logger, err := cfg.newLogger()
	if err != nil {
		return nil, err
	}
	return &environment{
		config: cfg,
		zap:    zapLogger,
		log:    logger,
		parser: cfg.newParser(logger),
	}, nil
}

func (e *environment) close() {
	_ = e.zap.Sync() // nolint
}
