package logging

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Supported values of the --log-format flag
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Configure sets the level and output format of the logger. JSON output
// carries a Cloud Logging severity so that entries are classified correctly
// when the harvester runs on GCP
func Configure(logger *log.Logger, level, format string) error {
	if logger == nil {
		return nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch format {
	case FormatJSON:
		ConfigureLogrusJSON(logger)
	case FormatText, "":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q, expected %q or %q", format, FormatText, FormatJSON)
	}

	return nil
}

// ConfigureLogrusJSON sets the logger to emit JSON logs with a GCP severity field.
func ConfigureLogrusJSON(logger *log.Logger) {
	if logger == nil {
		return
	}

	logger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyMsg: "message",
		},
	})
	logger.AddHook(SeverityHook{})
}

// SeverityHook adds a Cloud Logging severity field to log entries, unless the
// entry already has one
type SeverityHook struct{}

func (SeverityHook) Levels() []log.Level {
	return log.AllLevels
}

func (SeverityHook) Fire(entry *log.Entry) error {
	if entry == nil {
		return nil
	}
	if _, ok := entry.Data["severity"]; ok {
		return nil
	}

	entry.Data["severity"] = severityForLevel(entry.Level)
	return nil
}

func severityForLevel(level log.Level) string {
	switch level {
	case log.PanicLevel:
		return "EMERGENCY"
	case log.FatalLevel:
		return "CRITICAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARNING"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel, log.TraceLevel:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}
