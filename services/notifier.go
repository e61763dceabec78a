package services

import (
	"sync"

	"github.com/Bipul-Dubey/loyalty-predictor/constants"
)

// Notification is one transient message for the user.
type Notification struct {
	Message  string                 `json:"message"`
	Severity constants.SeverityEnum `json:"severity"`
}

// Notifier renders notifications. How and for how long is up to the front end.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// ToastCollector records notifications so a front end can render them after
// the submission returns.
type ToastCollector struct {
	mu     sync.Mutex
	toasts []Notification
}

func (c *ToastCollector) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = append(c.toasts, n)
}

// Toasts returns a copy of everything collected so far.
func (c *ToastCollector) Toasts() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Last returns the most recent notification.
func (c *ToastCollector) Last() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.toasts) == 0 {
		return Notification{}, false
	}
	return c.toasts[len(c.toasts)-1], true
}
