package logger

import (
	"github.com/sirupsen/logrus"
)

var root = logrus.New()

// Instance is embedded into components which log.
type Instance struct {
	Log *logrus.Entry
}

func New(name ...string) Instance {
	if len(name) == 0 {
		return Instance{
			Log: logrus.NewEntry(root),
		}
	}
	return Instance{
		Log: root.WithField("module", name[0]),
	}
}

// Root returns the logger every Instance writes through.
func Root() *logrus.Logger {
	return root
}
