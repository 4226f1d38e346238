package suite

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// Suite bundles what a console game needs in tests: scripted input, captured output and logs.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input  *strings.Reader
	Output *bytes.Buffer
	Logs   *bytes.Buffer
}

// New - every line becomes one answer typed into the console.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	script := ""
	if len(lines) > 0 {
		script = strings.Join(lines, "\n") + "\n"
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Input:  strings.NewReader(script),
		Output: &bytes.Buffer{},
		Logs:   logs,
	}
}
