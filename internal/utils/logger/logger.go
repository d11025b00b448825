// Package logger provides a global logger for the library.
package logger

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.uber.org/zap"

	"github.com/datakit-labs/seriesops/internal/config"
)

var Logger *zap.Logger

func initLogger() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	cfg, err := config.LoadLoggerEnv(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load logger environment, using defaults")
		cfg = &config.LoggerEnvConfig{Environment: "prod", LogLevel: "info"}
	}

	environment := strings.ToLower(cfg.Environment)

	logLevel := zerolog.InfoLevel
	switch environment {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
	}
	if parsed, perr := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); perr == nil && parsed != zerolog.NoLevel {
		logLevel = parsed
	}
	zerolog.SetGlobalLevel(logLevel)

	switch environment {
	case "dev", "test":
		Logger = zap.Must(zap.NewDevelopment())
	default:
		Logger = zap.Must(zap.NewProduction())
	}

	log.Info().Str("environment", environment).Str("level", logLevel.String()).Msg("logger initialized")
}

// Init initializes the logger from the environment. Call it once from
// whichever program embeds the library; the transforms themselves never
// require it.
func Init() {
	initLogger()
}

// Sugar returns a sugared logger for easier use.
func Sugar() *zap.SugaredLogger {
	if Logger == nil {
		Logger = zap.Must(zap.NewProduction())
	}
	return Logger.Sugar()
}
