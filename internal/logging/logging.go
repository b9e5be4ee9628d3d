package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger shared by the whole server. Every line
// carries the service name so aggregated logs stay attributable.
func SetupLogging() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	})
	logger.AddHook(&serviceHook{service: "contaai"})
	return logger
}

// serviceHook stamps the service name onto every entry.
type serviceHook struct {
	service string
}

func (h *serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.service
	return nil
}
