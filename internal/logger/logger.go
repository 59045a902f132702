package logger

import (
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with additional functionality
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a new structured logger instance
func NewLogger(cfg *config.Config) *Logger {
	log := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Set log format
	if cfg.Logging.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Logger{Logger: log}
}

// WithUser adds user context to log entries
func (l *Logger) WithUser(userID string) *logrus.Entry {
	return l.WithField("user_id", userID)
}

// WithProspect adds prospect context to log entries
func (l *Logger) WithProspect(prospectID string) *logrus.Entry {
	return l.WithField("prospect_id", prospectID)
}

// WithImport adds import batch context to log entries
func (l *Logger) WithImport(fingerprint string) *logrus.Entry {
	return l.WithField("import_fingerprint", fingerprint)
}

// WithCallLog adds call log context to log entries
func (l *Logger) WithCallLog(callLogID string) *logrus.Entry {
	return l.WithField("call_log_id", callLogID)
}
