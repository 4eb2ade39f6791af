package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestZerologAdapterFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Info("hello",
		String("key", "value"), Int("n", -7), Uint64("u", 9),
		Float64("f", 0.5), Bool("ok", true))
	logger.Error("boom", errors.New("broken"))
	logger.Debug("quiet", Err(errors.New("cause")))

	out := buf.String()
	for _, want := range []string{
		`"component":"test"`, `"key":"value"`, `"n":-7`, `"u":9`, `"f":0.5`,
		`"ok":true`, `"error":"broken"`, `"error":"cause"`,
		"hello", "boom", "quiet",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestLevels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "levels")

	logger.Info("at info")
	logger.Debug("at debug")
	logger.Error("at error", errors.New("e"))

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"level":"debug"`, `"level":"error"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}
