package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"clementus360/glowup/types"

	"github.com/charmbracelet/lipgloss"
)

// Notifier shows transient, dismissible messages to the user.
type Notifier interface {
	Notify(n types.Notification)
}

// ErrorNotification builds the error toast used by both client flows.
func ErrorNotification(description string, duration time.Duration) types.Notification {
	return types.Notification{
		Title:       "Error",
		Description: description,
		Level:       types.LevelError,
		Duration:    duration,
		Closable:    true,
	}
}

var (
	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	infoTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	descStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Terminal writes each notification as one styled line. A terminal has no
// auto-dismiss, so Duration is informational only.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Notify(n types.Notification) {
	title := infoTitleStyle.Render(n.Title)
	if n.Level == types.LevelError {
		title = errorTitleStyle.Render(n.Title)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", title, descStyle.Render(n.Description))
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []types.Notification
}

func (r *Recorder) Notify(n types.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *Recorder) Notifications() []types.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

type discard struct{}

func (discard) Notify(types.Notification) {}

// Discard drops every notification.
var Discard Notifier = discard{}
