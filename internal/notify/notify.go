package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Kind classifies a user-facing notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Event is the payload handed to the notification sink. The sink decides
// rendering, timing and dismissal; the emitter only supplies the content.
type Event struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(Event)
}

func Success(title, message string) Event {
	return Event{Kind: KindSuccess, Title: title, Message: message}
}

func Error(title, message string) Event {
	return Event{Kind: KindError, Title: title, Message: message}
}

func Info(title, message string) Event {
	return Event{Kind: KindInfo, Title: title, Message: message}
}

// Recorder buffers events so a caller can collect everything emitted during
// one operation, e.g. to return them as toast payloads in an HTTP response.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns the buffered events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

type logged struct {
	next Notifier
	log  *slog.Logger
}

// WithLogging wraps a Notifier so every event is also written to the log.
func WithLogging(next Notifier, log *slog.Logger) Notifier {
	return logged{next: next, log: log}
}

func (l logged) Notify(e Event) {
	level := slog.LevelInfo
	if e.Kind == KindError {
		level = slog.LevelWarn
	}
	l.log.Log(context.Background(), level, "notification", "kind", string(e.Kind), "title", e.Title, "message", e.Message)
	l.next.Notify(e)
}
