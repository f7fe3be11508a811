package notify

import (
	"time"
)

type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Warning Kind = "warning"
	Error   Kind = "error"
)

const (
	DefaultTimeout = 2500 * time.Millisecond
	DefaultMax     = 3
)

type Toast struct {
	ID        uint64
	Kind      Kind
	Message   string
	ExpiresAt time.Time
}

// Notifier is what flows report outcomes to.
type Notifier interface {
	Toast(kind Kind, message string)
}

// Center is a capped queue of transient toasts. When full the oldest toast is dropped.
type Center struct {
	Timeout time.Duration
	Max     int
	Now     func() time.Time

	seq    uint64
	toasts []Toast
}

func NewCenter(timeout time.Duration, max int) *Center {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if max <= 0 {
		max = DefaultMax
	}
	return &Center{Timeout: timeout, Max: max, Now: time.Now}
}

func (c *Center) Toast(kind Kind, message string) {
	if message == "" {
		return
	}
	c.seq++
	c.toasts = append(c.toasts, Toast{
		ID:        c.seq,
		Kind:      kind,
		Message:   message,
		ExpiresAt: c.Now().Add(c.Timeout),
	})
	if over := len(c.toasts) - c.Max; over > 0 {
		c.toasts = c.toasts[over:]
	}
}

// Active prunes expired toasts and returns the rest, oldest first.
func (c *Center) Active() []Toast {
	now := c.Now()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

func (c *Center) Len() int { return len(c.toasts) }

// Drain returns the active toasts and empties the queue.
func (c *Center) Drain() []Toast {
	out := c.Active()
	c.toasts = nil
	return out
}
