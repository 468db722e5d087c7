package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// componentHook добавляет имя процесса в каждую запись
type componentHook struct {
	component string
}

func (h componentHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h componentHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["component"]; !ok {
		entry.Data["component"] = h.component
	}
	return nil
}

// New создает JSON логгер; component - имя процесса (api, seed)
func New(logLevel, component string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)

	if component != "" {
		log.AddHook(componentHook{component: component})
	}
	return log
}
