package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// Set output untuk InfoLogger ke stdout
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Set output untuk ErrorLogger ke stderr
	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)

	// Override level lewat env jika di-set (debug/info/warn/error)
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			InfoLogger.SetLevel(parsed)
		}
	}
}
