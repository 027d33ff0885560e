package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Notification is a short message for the user that carries no state once shown.
type Notification struct {
	Kind    Kind
	Message string
}

func Successf(format string, args ...interface{}) Notification {
	return Notification{Kind: Success, Message: fmt.Sprintf(format, args...)}
}

func Errorf(format string, args ...interface{}) Notification {
	return Notification{Kind: Error, Message: fmt.Sprintf(format, args...)}
}

type entry struct {
	Notification
	expiresAt time.Time
}

// Board keeps notifications visible for a fixed TTL, for renderers that redraw
// the whole screen.
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []entry
	now     func() time.Time
	changed chan struct{}
}

func NewBoard(ttl time.Duration) *Board {
	return &Board{
		ttl:     ttl,
		now:     time.Now,
		changed: make(chan struct{}, 1),
	}
}

func (b *Board) Notify(_ context.Context, n Notification) {
	b.mu.Lock()
	b.entries = append(b.entries, entry{Notification: n, expiresAt: b.now().Add(b.ttl)})
	b.mu.Unlock()

	select {
	case b.changed <- struct{}{}:
	default:
	}
}

// Active drops expired notifications and returns the rest, oldest first.
func (b *Board) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	kept := b.entries[:0]
	res := make([]Notification, 0, len(b.entries))
	for _, e := range b.entries {
		if now.Before(e.expiresAt) {
			kept = append(kept, e)
			res = append(res, e.Notification)
		}
	}
	b.entries = kept
	return res
}

// Changed signals after every Notify.
func (b *Board) Changed() <-chan struct{} {
	return b.changed
}

func (b *Board) TTL() time.Duration {
	return b.ttl
}

// Printer writes notifications as lines: successes to out, errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

func (p *Printer) Notify(_ context.Context, n Notification) {
	w := p.out
	if n.Kind == Error {
		w = p.errOut
	}
	fmt.Fprintln(w, n.Message)
}
