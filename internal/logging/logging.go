package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// Init configures the shared logger from the given level string,
// defaulting to info on garbage input.
func Init(levelStr string) {
	Logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		Logger.Warnf("invalid log level %q, defaulting to info", levelStr)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
