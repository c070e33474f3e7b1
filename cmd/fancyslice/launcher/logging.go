package launcher

import (
	"io"
	"os"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// newLogger builds the command logger. Verbosity 0 maps to fatal and 5 to trace.
func newLogger(cfg LoggingConfig, sentry SentryConfig, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	log := logrus.New()
	log.Out = out
	log.SetLevel(verbosityLevel(cfg.Verbosity))

	switch cfg.Format {
	case "json":
		log.Formatter = &logrus.JSONFormatter{}
	default:
		log.Formatter = &logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		}
	}

	if sentry.DSN != "" {
		hook, err := logrus_sentry.NewSentryHook(sentry.DSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, err
		}
		log.AddHook(hook)
	}
	return log, nil
}

func verbosityLevel(v int) logrus.Level {
	switch {
	case v < 0:
		v = 0
	case v > 5:
		v = 5
	}
	return logrus.Level(v + 1)
}
