package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	FieldComponent = "component"
	FieldModule    = "module"
)

// New инициализирует логгер.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}

// Component возвращает запись лога, помеченную компонентом и (необязательно) модулем.
func Component(l *logrus.Logger, component, module string) *logrus.Entry {
	fields := logrus.Fields{FieldComponent: component}
	if module != "" {
		fields[FieldModule] = module
	}
	return l.WithFields(fields)
}
