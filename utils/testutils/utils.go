package testutils

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/gridtracks/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

// CapturedLogs stores the warnings emitted between
// a call to [CaptureLogs] and one of its assertion methods.
type CapturedLogs struct {
	buf      bytes.Buffer
	previous io.Writer
}

// CaptureLogs redirects [logger.WarningLogger] until
// one of the methods of the returned value is called.
func CaptureLogs() *CapturedLogs {
	c := &CapturedLogs{previous: logger.WarningLogger.Writer()}
	logger.WarningLogger.SetOutput(&c.buf)
	return c
}

func (c *CapturedLogs) restore() {
	if c.previous == nil {
		c.previous = os.Stdout
	}
	logger.WarningLogger.SetOutput(c.previous)
}

// Logs stops the capture and returns the logged lines.
func (c *CapturedLogs) Logs() []string {
	c.restore()
	var out []string
	for _, line := range strings.Split(c.buf.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// AssertNoLogs fails if any warning was emitted.
func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got %d:\n%s", len(logs), strings.Join(logs, "\n"))
	}
}

// CheckLogs asserts that each of the expected substrings
// is found in the corresponding warning.
func (c *CapturedLogs) CheckLogs(t *testing.T, expected ...string) {
	t.Helper()
	logs := c.Logs()
	if len(logs) != len(expected) {
		t.Fatalf("expected %d logs, got %d:\n%s", len(expected), len(logs), strings.Join(logs, "\n"))
	}
	for i, exp := range expected {
		if !strings.Contains(logs[i], exp) {
			t.Fatalf("log %d: expected %q in\n%s", i, exp, logs[i])
		}
	}
}
