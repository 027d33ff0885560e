package messages

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/model/view"
)

type dashboardClient interface {
	SendTracked(text string, userID int64) (int, error)
	EditMessage(text string, userID int64, messageID int) error
}

type dashboard struct {
	messageID int
	text      string
}

// Dashboards keeps one rendered expense list per chat and edits it in place
// whenever the store changes. A chat that asks again gets a fresh message.
type Dashboards struct {
	client   dashboardClient
	store    *state.Store
	location *time.Location
	now      func() time.Time

	mu   sync.Mutex
	open map[int64]*dashboard
}

func NewDashboards(client dashboardClient, store *state.Store, config config) *Dashboards {
	return &Dashboards{
		client:   client,
		store:    store,
		location: config.Location(),
		now:      time.Now,
		open:     make(map[int64]*dashboard),
	}
}

func (d *Dashboards) render() string {
	return view.ChatText(view.Render(d.store.Snapshot(), view.Options{Now: d.now(), Location: d.location}), view.MaxChatRunes)
}

func (d *Dashboards) Open(userID int64) error {
	text := d.render()
	id, err := d.client.SendTracked(text, userID)
	if err != nil {
		return errors.Wrap(err, "send dashboard")
	}

	d.mu.Lock()
	d.open[userID] = &dashboard{messageID: id, text: text}
	d.mu.Unlock()
	return nil
}

// Run redraws open dashboards after every store change until ctx is done.
func (d *Dashboards) Run(ctx context.Context) {
	changes, cancel := d.store.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			d.Refresh()
		}
	}
}

// Refresh edits every dashboard whose text changed. Chats whose message can no
// longer be edited are dropped. Edits run without holding the lock.
func (d *Dashboards) Refresh() {
	text := d.render()

	d.mu.Lock()
	targets := make(map[int64]int, len(d.open))
	for userID, board := range d.open {
		if board.text != text {
			targets[userID] = board.messageID
		}
	}
	d.mu.Unlock()

	for userID, messageID := range targets {
		err := d.client.EditMessage(text, userID, messageID)
		if err != nil {
			logger.Warn("cannot edit dashboard", zap.Int64("user", userID), zap.Error(err))
		}

		d.mu.Lock()
		// the chat may have opened a new dashboard meanwhile
		if board, ok := d.open[userID]; ok && board.messageID == messageID {
			if err != nil {
				delete(d.open, userID)
			} else {
				board.text = text
			}
		}
		d.mu.Unlock()
	}
}
