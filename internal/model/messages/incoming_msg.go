package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

const somethingWrongMessage = "Desculpe, algo deu errado...\n"

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, syncer syncer, reports reporter, config config, opts ...HandlerOption) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(syncer, reports, config, opts...),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	ctx = WithUser(ctx, msg.UserID)

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

// handle sends the handler's reply. An empty reply means the handler already
// answered, through a notification or the dashboard.
func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		_ = s.tgClient.SendMessage(somethingWrongMessage+resp, msg.UserID)
		return err
	}
	if resp == "" {
		return nil
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}

type userKey struct{}

// WithUser marks ctx as belonging to a chat, so notifications raised while
// handling the message reach that chat.
func WithUser(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

func UserFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userKey{}).(int64)
	return id, ok
}
