// config/logger.go
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func InitLogger() {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(Getenv("LOG_LEVEL", "info"))
	if err != nil {
		Logger.SetLevel(logrus.InfoLevel)
		Logger.Warn("Invalid LOG_LEVEL, falling back to info:", err)
		return
	}
	Logger.SetLevel(level)
}
