package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shirhatti/cad/internal/adapters/logger"
)

func TestLogger_SetOutput(t *testing.T) {
	log := logger.New()
	l, ok := log.(*logger.Logger)
	if !ok {
		t.Fatalf("New returned %T", log)
	}

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("rendering rack__bracket")
	l.Warn("cache push failed")
	l.Error(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"rendering rack__bracket", "cache push failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
