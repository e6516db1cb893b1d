package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/notepad-sync/internal/logger"
)

func TestConsoleNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	n.Notify(context.Background(), "one or more assets are too large")

	assert.Contains(t, buf.String(), "one or more assets are too large")
	assert.Contains(t, buf.String(), "!")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestConsoleNotifier_WriteErrorIsSwallowed(t *testing.T) {
	n := NewConsoleNotifier(failingWriter{})

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), "hello")
	})
}

func TestLogNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(&logger.Logger{Logger: zerolog.New(&buf)})

	n.Notify(context.Background(), "oversized assets")

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "oversized assets")
}

func TestMulti_Notify(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewConsoleNotifier(&a), NewConsoleNotifier(&b)}

	m.Notify(context.Background(), "both")

	assert.Contains(t, a.String(), "both")
	assert.Contains(t, b.String(), "both")
}
