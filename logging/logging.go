package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Usable before BootstrapLogger
// runs so init-time goroutines never hit a nil logger.
var Log = logrus.New()

// BootstrapLogger configures the shared logger
func BootstrapLogger() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		Log.SetLevel(level)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}
