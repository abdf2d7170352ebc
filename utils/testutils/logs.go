package testutils

import (
	"os"
	"strings"
	"testing"

	"github.com/benoitkugler/gridlayout/logger"
)

// LogsCapture stores the warnings emitted while it is active.
type LogsCapture struct {
	logs []string
}

func (c *LogsCapture) Write(p []byte) (int, error) {
	c.logs = append(c.logs, strings.TrimSpace(string(p)))
	return len(p), nil
}

// CaptureLogs redirects the warning logger until one of
// the Assert/Check methods is called.
func CaptureLogs() *LogsCapture {
	out := new(LogsCapture)
	logger.WarningLogger.SetOutput(out)
	return out
}

func (c *LogsCapture) release() { logger.WarningLogger.SetOutput(os.Stdout) }

// Logs returns the captured warnings and stops the capture.
func (c *LogsCapture) Logs() []string {
	c.release()
	return c.logs
}

func (c *LogsCapture) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got (%d): \n%s", len(logs), strings.Join(logs, "\n"))
	}
}

// CheckLogs asserts that each captured warning contains the
// corresponding expected fragment.
func (c *LogsCapture) CheckLogs(t *testing.T, expected ...string) {
	t.Helper()
	logs := c.Logs()
	if len(logs) != len(expected) {
		t.Fatalf("expected %d logs, got %d: \n%s", len(expected), len(logs), strings.Join(logs, "\n"))
	}
	for i, exp := range expected {
		if !strings.Contains(logs[i], exp) {
			t.Fatalf("log %d: expected %q in\n%s", i, exp, logs[i])
		}
	}
}
