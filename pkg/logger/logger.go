package logger

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Options struct {
	Env       string
	SentryDSN string
}

// New builds the process logger. Development gets a console writer, every
// other env JSON lines. With a Sentry DSN, error records are also sent there.
// The returned func flushes pending Sentry events.
func New(opts Options) (*slog.Logger, func(), error) {
	var zl zerolog.Logger
	level := slog.LevelInfo
	if opts.Env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
		level = slog.LevelDebug
	} else {
		zl = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	handler := slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler()
	flush := func() {}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			return nil, flush, fmt.Errorf("sentry init: %w", err)
		}
		flush = func() { sentry.Flush(2 * time.Second) }
		handler = slogmulti.Fanout(
			handler,
			slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
		)
	}

	return slog.New(handler), flush, nil
}
