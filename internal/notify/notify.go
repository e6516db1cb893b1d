// Package notify surfaces non-fatal warnings of a sync attempt to the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/notepad-sync/internal/logger"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Notifier shows a message to the user. Implementations must not block the
// caller for long and must not fail.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

var noticeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("214")).
	Bold(true)

// ConsoleNotifier prints notices to a terminal.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(ctx context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintln(n.out, noticeStyle.Render("! "+message)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "ConsoleNotifier.Notify").
			Msg("failed to print notice")
	}
}

// LogNotifier records notices in the log only. It is used by background
// jobs that have no terminal.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, message string) {
	n.logger.Warn().Str("func", "LogNotifier.Notify").Msg(message)
}

// Multi fans a notice out to every notifier.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, message string) {
	for _, n := range m {
		n.Notify(ctx, message)
	}
}
