package state

import (
	"sync"
	"time"

	"max.ks1230/gastos-client/internal/entity/expense"
)

type Kind int

const (
	Categories Kind = iota
	PaymentTypes
	Expenses
)

var Kinds = []Kind{Categories, PaymentTypes, Expenses}

func (k Kind) String() string {
	switch k {
	case Categories:
		return "categorias"
	case PaymentTypes:
		return "tipos-pagamento"
	case Expenses:
		return "gastos"
	}
	return "unknown"
}

type Status int

const (
	Unloaded Status = iota
	Loading
	Loaded
	Stale
)

func (s Status) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Stale:
		return "stale"
	}
	return "unknown"
}

type Connection int

const (
	Unknown Connection = iota
	Online
	Offline
)

// stale survives Begin: a reload of stale data is still stale until a fetch
// is accepted.
type collection struct {
	status    Status
	stale     bool
	issued    uint64
	applied   uint64
	updatedAt time.Time
}

// Store owns the cached collections. Every fetch takes a sequence number from
// Begin; results carrying a number not newer than the last applied one are
// dropped, so a slow response never overwrites a fresher one.
type Store struct {
	mu           sync.Mutex
	categories   []expense.Category
	paymentTypes []expense.PaymentType
	expenses     []expense.Expense
	meta         [3]collection
	connection   Connection
	subscribers  map[int]chan struct{}
	nextSubID    int
	now          func() time.Time
}

func New() *Store {
	return &Store{
		subscribers: make(map[int]chan struct{}),
		now:         time.Now,
	}
}

// Begin marks kind as loading and returns the sequence number the caller must
// hand back to Replace* or Fail.
func (s *Store) Begin(kind Kind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &s.meta[kind]
	m.issued++
	m.status = Loading
	s.notifyLocked()
	return m.issued
}

func (s *Store) ReplaceCategories(seq uint64, items []expense.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptLocked(Categories, seq) {
		return false
	}
	s.categories = items
	s.notifyLocked()
	return true
}

func (s *Store) ReplacePaymentTypes(seq uint64, items []expense.PaymentType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptLocked(PaymentTypes, seq) {
		return false
	}
	s.paymentTypes = items
	s.notifyLocked()
	return true
}

// ReplaceExpenses swaps in items and sorts the cached slice newest first.
func (s *Store) ReplaceExpenses(seq uint64, items []expense.Expense) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptLocked(Expenses, seq) {
		return false
	}
	expense.SortByDateDesc(items)
	s.expenses = items
	s.notifyLocked()
	return true
}

// Fail records a failed fetch. Cached data stays as it is.
func (s *Store) Fail(kind Kind, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &s.meta[kind]
	if seq <= m.applied {
		return false
	}
	m.status = Stale
	m.stale = true
	s.notifyLocked()
	return true
}

func (s *Store) acceptLocked(kind Kind, seq uint64) bool {
	m := &s.meta[kind]
	if seq <= m.applied {
		return false
	}
	m.applied = seq
	m.status = Loaded
	m.stale = false
	m.updatedAt = s.now()
	return true
}

func (s *Store) SetConnection(c Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connection == c {
		return
	}
	s.connection = c
	s.notifyLocked()
}

// Status reports the state machine position of one collection.
func (s *Store) Status(kind Kind) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta[kind].status
}

// Stale reports whether the cached data of kind is known to be out of date,
// whether or not a reload is in flight.
func (s *Store) Stale(kind Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta[kind].stale
}

// Snapshot is an immutable copy of the store, safe to render from any goroutine.
type Snapshot struct {
	Categories   []expense.Category
	PaymentTypes []expense.PaymentType
	Expenses     []expense.Expense
	Status       map[Kind]Status
	Stale        map[Kind]bool
	UpdatedAt    map[Kind]time.Time
	Connection   Connection
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Categories:   append([]expense.Category(nil), s.categories...),
		PaymentTypes: append([]expense.PaymentType(nil), s.paymentTypes...),
		Expenses:     append([]expense.Expense(nil), s.expenses...),
		Status:       make(map[Kind]Status, len(Kinds)),
		Stale:        make(map[Kind]bool, len(Kinds)),
		UpdatedAt:    make(map[Kind]time.Time, len(Kinds)),
		Connection:   s.connection,
	}
	for _, k := range Kinds {
		snap.Status[k] = s.meta[k].status
		snap.Stale[k] = s.meta[k].stale
		snap.UpdatedAt[k] = s.meta[k].updatedAt
	}
	return snap
}

// Subscribe returns a channel that receives a signal after every change.
// Signals coalesce: a slow reader sees one pending signal, not a backlog.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan struct{}, 1)
	s.subscribers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
