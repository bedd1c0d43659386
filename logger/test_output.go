package logger

import (
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// SetTestMode sets test mode: everything logged goes into the test log.
func SetTestMode(t testing.TB) {
	root.SetOutput(testWriter{t})
	root.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		root.SetOutput(os.Stderr)
		root.SetLevel(logrus.InfoLevel)
	})
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
