package notify

import "log"

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notifier is the toast surface the controllers fire after mutating
// operations. Calls are fire-and-forget; delivery is best effort.
type Notifier interface {
	Notify(message string, kind Kind)
}

// LogNotifier writes notifications to the process log. Used when no
// websocket hub is wired up.
type LogNotifier struct{}

func (LogNotifier) Notify(message string, kind Kind) {
	log.Printf("[%s] %s", kind, message)
}
