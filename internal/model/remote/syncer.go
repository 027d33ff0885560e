package remote

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/gastos-client/internal/clients/api"
	"max.ks1230/gastos-client/internal/entity/event"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/notify"
	"max.ks1230/gastos-client/internal/model/state"
)

const (
	ExpenseCreatedMessage     = "Gasto adicionado com sucesso!"
	ExpenseDeletedMessage     = "Gasto removido com sucesso!"
	CategoryCreatedMessage    = "Categoria criada com sucesso!"
	PaymentTypeCreatedMessage = "Tipo de pagamento criado com sucesso!"

	DeletePrompt = "Tem certeza que deseja excluir este gasto?"
)

// ErrDeclined is returned when the user did not confirm a delete.
var ErrDeclined = errors.New("operation not confirmed")

type backend interface {
	Ping(ctx context.Context) error
	ListCategories(ctx context.Context) ([]expense.Category, error)
	CreateCategory(ctx context.Context, draft expense.CategoryDraft) (expense.Category, error)
	ListPaymentTypes(ctx context.Context) ([]expense.PaymentType, error)
	CreatePaymentType(ctx context.Context, draft expense.PaymentTypeDraft) (expense.PaymentType, error)
	ListExpenses(ctx context.Context, filter api.Filter) ([]expense.Expense, error)
	CreateExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type notifier interface {
	Notify(ctx context.Context, n notify.Notification)
}

type config interface {
	RefreshInterval() time.Duration
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Confirmed is for callers that already collected the user's approval.
var Confirmed Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })

type eventPublisher interface {
	Publish(ctx context.Context, change event.Change) error
}

type snapshotCache interface {
	SaveCollection(ctx context.Context, name string, payload []byte) error
	LoadCollection(ctx context.Context, name string) ([]byte, error)
}

type Option func(*Syncer)

// WithEvents publishes a change event after every successful write.
func WithEvents(p eventPublisher) Option {
	return func(s *Syncer) {
		s.events = p
	}
}

// WithSnapshots saves every applied collection and lets Warm restore them.
func WithSnapshots(c snapshotCache) Option {
	return func(s *Syncer) {
		s.snapshots = c
	}
}

// Syncer keeps a state.Store in step with the backend.
type Syncer struct {
	api       backend
	store     *state.Store
	notifier  notifier
	interval  time.Duration
	events    eventPublisher
	snapshots snapshotCache
	now       func() time.Time
}

func New(client backend, store *state.Store, notifier notifier, cfg config, opts ...Option) *Syncer {
	s := &Syncer{
		api:      client,
		store:    store,
		notifier: notifier,
		interval: cfg.RefreshInterval(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Syncer) Store() *state.Store {
	return s.store
}

// Run probes the backend and loads everything once, then re-fetches expenses
// on every tick until ctx is done.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start syncing", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop syncing")
			return
		// fake first tick to load immediately
		case <-firstTick:
			s.LoadAll(ctx)
		case <-ticker.C:
			s.RefreshExpenses(ctx)
		}
	}
}

// LoadAll runs the probe and the three fetches concurrently and waits for them.
func (s *Syncer) LoadAll(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		s.Probe(ctx)
		return nil
	})
	g.Go(func() error {
		s.RefreshCategories(ctx)
		return nil
	})
	g.Go(func() error {
		s.RefreshPaymentTypes(ctx)
		return nil
	})
	g.Go(func() error {
		s.RefreshExpenses(ctx)
		return nil
	})
	_ = g.Wait()
}

// Probe is advisory only: nothing else waits on it.
func (s *Syncer) Probe(ctx context.Context) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "probe")
	defer span.Finish()

	if err := s.api.Ping(ctx); err != nil {
		logger.Warn("backend offline", zap.Error(err))
		s.store.SetConnection(state.Offline)
		return false
	}
	s.store.SetConnection(state.Online)
	return true
}

func (s *Syncer) RefreshCategories(ctx context.Context) bool {
	return refresh(ctx, s, state.Categories, s.api.ListCategories, s.store.ReplaceCategories)
}

func (s *Syncer) RefreshPaymentTypes(ctx context.Context) bool {
	return refresh(ctx, s, state.PaymentTypes, s.api.ListPaymentTypes, s.store.ReplacePaymentTypes)
}

func (s *Syncer) RefreshExpenses(ctx context.Context) bool {
	list := func(ctx context.Context) ([]expense.Expense, error) {
		return s.api.ListExpenses(ctx, api.Filter{})
	}
	return refresh(ctx, s, state.Expenses, list, s.store.ReplaceExpenses)
}

// refresh fetches one collection. Failures are logged and leave the cached
// collection as it was; nothing is shown to the user for reads.
func refresh[T any](
	ctx context.Context,
	s *Syncer,
	kind state.Kind,
	list func(context.Context) ([]T, error),
	replace func(uint64, []T) bool,
) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "refresh")
	defer span.Finish()
	span.SetTag("collection", kind.String())

	seq := s.store.Begin(kind)
	items, err := list(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		countFetchFailure(kind)
		s.store.Fail(kind, seq)
		logger.Error("cannot load collection", zap.Stringer("collection", kind), zap.Error(err))
		return false
	}

	if !replace(seq, items) {
		countStaleResponse(kind)
		logger.Info("discarded stale response", zap.Stringer("collection", kind), zap.Uint64("seq", seq))
		return false
	}

	s.saveSnapshot(ctx, kind, items)
	return true
}

func (s *Syncer) CreateCategory(ctx context.Context, draft expense.CategoryDraft) (expense.Category, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "createCategory")
	defer span.Finish()

	draft, err := draft.Normalize()
	if err == nil {
		var created expense.Category
		created, err = s.api.CreateCategory(ctx, draft)
		if err == nil {
			s.RefreshCategories(ctx)
			s.succeed(ctx, event.CategoryCreated, created.ID, CategoryCreatedMessage)
			return created, nil
		}
	}

	ext.Error.Set(span, true)
	s.fail(ctx, "create category", err)
	return expense.Category{}, err
}

func (s *Syncer) CreatePaymentType(ctx context.Context, draft expense.PaymentTypeDraft) (expense.PaymentType, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "createPaymentType")
	defer span.Finish()

	draft, err := draft.Normalize()
	if err == nil {
		var created expense.PaymentType
		created, err = s.api.CreatePaymentType(ctx, draft)
		if err == nil {
			s.RefreshPaymentTypes(ctx)
			s.succeed(ctx, event.PaymentTypeCreated, created.ID, PaymentTypeCreatedMessage)
			return created, nil
		}
	}

	ext.Error.Set(span, true)
	s.fail(ctx, "create payment type", err)
	return expense.PaymentType{}, err
}

func (s *Syncer) CreateExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "createExpense")
	defer span.Finish()

	draft, err := draft.Normalize()
	if err == nil {
		var created expense.Expense
		created, err = s.api.CreateExpense(ctx, draft)
		if err == nil {
			s.RefreshExpenses(ctx)
			s.succeed(ctx, event.ExpenseCreated, created.ID, ExpenseCreatedMessage)
			return created, nil
		}
	}

	ext.Error.Set(span, true)
	s.fail(ctx, "create expense", err)
	return expense.Expense{}, err
}

// DeleteExpense asks confirm first; a declined prompt sends nothing.
func (s *Syncer) DeleteExpense(ctx context.Context, id string, confirm Confirmer) error {
	if !confirm.Confirm(ctx, DeletePrompt) {
		logger.Info("delete not confirmed", zap.String("id", id))
		return ErrDeclined
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteExpense")
	defer span.Finish()
	span.SetTag("id", id)

	if err := s.api.DeleteExpense(ctx, id); err != nil {
		ext.Error.Set(span, true)
		s.fail(ctx, "delete expense", err)
		return err
	}

	s.RefreshExpenses(ctx)
	s.succeed(ctx, event.ExpenseDeleted, id, ExpenseDeletedMessage)
	return nil
}

func (s *Syncer) succeed(ctx context.Context, typ event.Type, id, message string) {
	logger.Info("write succeeded", zap.String("event", string(typ)), zap.String("id", id))
	s.publish(ctx, event.Change{Type: typ, EntityID: id, At: s.now()})
	s.notifier.Notify(ctx, notify.Successf(message))
}

func (s *Syncer) fail(ctx context.Context, op string, err error) {
	logger.Error("write failed", zap.String("op", op), zap.Error(err))
	s.notifier.Notify(ctx, notify.Notification{Kind: notify.Error, Message: api.UserMessage(err)})
}

func (s *Syncer) publish(ctx context.Context, change event.Change) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, change); err != nil {
		logger.Error("cannot publish change", zap.String("event", string(change.Type)), zap.Error(err))
	}
}

// HandleChange re-fetches the collection touched by a write made elsewhere.
func (s *Syncer) HandleChange(ctx context.Context, change event.Change) {
	switch change.Type {
	case event.ExpenseCreated, event.ExpenseDeleted:
		s.RefreshExpenses(ctx)
	case event.CategoryCreated:
		s.RefreshCategories(ctx)
	case event.PaymentTypeCreated:
		s.RefreshPaymentTypes(ctx)
	default:
		logger.Warn("unknown change type", zap.String("event", string(change.Type)))
	}
}
