package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"repair_desk/internal/domain/checklist"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/ledger"
	"repair_desk/internal/domain/pricing"
)

// OrderSession is one order opened for editing on the desk. It owns the
// reconcilers of that order exclusively; nothing is shared with other sessions.
// Every access goes through mu, so the save steps of an order never interleave
// with its edits.
type OrderSession struct {
	ID       string
	OrderID  int64
	OpenedAt time.Time

	lastSeen atomic.Int64 // unix nanoseconds of the last lookup

	mu              sync.Mutex
	rc              entities.RequestContext
	order           entities.RepairOrder
	persistedStatus entities.OrderStatus
	price           *pricing.Reconciler
	parts           *ledger.Ledger
	checks          *checklist.Checklist
	payment         entities.PaymentRecord
	paymentNotes    string
	search          *PartsSearch
}

func newOrderSession(id string, rc entities.RequestContext, search *PartsSearch) *OrderSession {
	s := &OrderSession{
		ID:       id,
		OpenedAt: time.Now().UTC(),
		rc:       rc,
		price:    pricing.NewReconciler(),
		parts:    ledger.New(),
		checks:   checklist.New(),
		search:   search,
	}
	s.touch(s.OpenedAt)
	return s
}

func (s *OrderSession) touch(at time.Time) {
	s.lastSeen.Store(at.UnixNano())
}

// LastSeen is the time of the last lookup of the session.
func (s *OrderSession) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load()).UTC()
}

// currentOrder is the order as it would be saved: the edited fields plus the
// figures held by the price reconciler.
func (s *OrderSession) currentOrder() entities.RepairOrder {
	o := s.order
	ps := s.price.State()
	o.EstimatedPrice = ps.FinalPrice
	o.LaborAmount = ps.LaborAmount
	o.StatusLabel = o.Status.Label()
	return o
}

func (s *OrderSession) statusChanged() bool {
	return s.order.Status != s.persistedStatus
}

// refreshPartsTotal pushes the ledger total into the price reconciler.
func (s *OrderSession) refreshPartsTotal() {
	s.price.OnPartsTotalChanged(s.parts.PartsTotal())
}

// reloadParts swaps the ledger content without re-deriving labor.
func (s *OrderSession) reloadParts(remote []entities.PartsLine) {
	s.price.BeginReload()
	defer s.price.EndReload()
	s.parts.ReconcileAfterSync(remote)
	s.refreshPartsTotal()
}

// applySavedOrder takes the server echo of the core fields. The local status
// stays authoritative until the status step; price fields always come from the
// reconciler.
func (s *OrderSession) applySavedOrder(saved entities.RepairOrder) {
	status := s.order.Status
	s.order = saved
	s.order.Status = status
}

// SessionView is a read-only snapshot of a session.
type SessionView struct {
	ID              string
	Order           entities.RepairOrder
	PersistedStatus entities.OrderStatus
	Price           pricing.PriceState
	Parts           []entities.PartsLine
	Incoming        checklist.State
	Exit            checklist.State
	Payment         entities.PaymentRecord
	PaymentNotes    string
	SearchQuery     string
	SearchResults   []entities.WarehouseItem
}

func (s *OrderSession) view() SessionView {
	query, results := s.search.Results()
	return SessionView{
		ID:              s.ID,
		Order:           s.currentOrder(),
		PersistedStatus: s.persistedStatus,
		Price:           s.price.State(),
		Parts:           s.parts.Lines(),
		Incoming:        s.checks.Incoming,
		Exit:            s.checks.Exit,
		Payment:         s.payment,
		PaymentNotes:    s.paymentNotes,
		SearchQuery:     query,
		SearchResults:   results,
	}
}

// SessionStore keeps the open sessions in memory, keyed by session id.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*OrderSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*OrderSession)}
}

func (st *SessionStore) Put(s *OrderSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// Get returns the session and marks it as seen.
func (st *SessionStore) Get(id string) (*OrderSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if ok {
		s.touch(time.Now())
	}
	return s, ok
}

func (st *SessionStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Evict drops the sessions not looked up for longer than idle and returns their
// ids. Unsaved edits of an evicted session are lost.
func (st *SessionStore) Evict(idle time.Duration, now time.Time) []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	var evicted []string
	for id, s := range st.sessions {
		if now.Sub(s.LastSeen()) > idle {
			delete(st.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// Sweep evicts idle sessions every interval until ctx is done. onEvict, when
// set, receives the ids of each non-empty eviction round.
func (st *SessionStore) Sweep(ctx context.Context, interval, idle time.Duration, onEvict func([]string)) {
	if interval <= 0 || idle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if ids := st.Evict(idle, now); len(ids) > 0 && onEvict != nil {
				onEvict(ids)
			}
		}
	}
}
