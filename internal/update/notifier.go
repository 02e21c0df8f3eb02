package update

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type Notification struct {
	Title string
	Body  string
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", "--urgency=critical", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s" sound name "Glass"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// RateLimitedNotifier drops notifications beyond the limiter's budget so a
// burst of firings does not flood the desktop.
type RateLimitedNotifier struct {
	next    DesktopNotifier
	limiter *rate.Limiter
}

var ErrNotificationThrottled = errors.New("update: notification throttled")

func NewRateLimitedNotifier(next DesktopNotifier, every time.Duration, burst int) *RateLimitedNotifier {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitedNotifier{next: next, limiter: rate.NewLimiter(rate.Every(every), burst)}
}

func (r *RateLimitedNotifier) Send(n Notification) error {
	if !r.limiter.Allow() {
		return ErrNotificationThrottled
	}
	return r.next.Send(n)
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`)
}

func (m *Model) notify(title, body string) {
	if !m.DesktopEnabled || m.notifier == nil {
		return
	}
	if err := m.notifier.Send(Notification{Title: title, Body: body}); err != nil {
		m.log.Warn().Err(err).Str("title", title).Msg("desktop notification failed")
	}
}
