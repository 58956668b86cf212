package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/pricing"
	"repair_desk/internal/usecase/interfaces"
	"repair_desk/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errors.New("edit session not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrCandidateNotFound  = errors.New("warehouse item not in the current search results")
)

// OrderEdit holds the core fields changed from the order screen; nil leaves a
// field as it is.
type OrderEdit struct {
	Status           *entities.OrderStatus
	FaultDescription *string
	TechnicianID     *int64
	TechnicianName   *string
	BillingInfo      *string
	UnlockCode       *string
	Accessories      *string
	Condition        *string
	PaymentNotes     *string
}

// IOrderSessionUseCase drives an order opened on the desk.
//
// Open loads everything an edit needs (order, both checklists, parts, payment);
// edits only touch the in-memory session until Save runs the sync sequence.
type IOrderSessionUseCase interface {
	Open(ctx context.Context, rc entities.RequestContext, orderID int64) (SessionView, error)
	Get(ctx context.Context, id string) (SessionView, error)
	Close(ctx context.Context, id string) error
	EditOrder(ctx context.Context, id string, edit OrderEdit) (SessionView, error)
	EditLabor(ctx context.Context, id string, amount float64) (SessionView, error)
	EditFinalPrice(ctx context.Context, id string, amount float64) (SessionView, error)
	SearchParts(ctx context.Context, id string, query string) ([]entities.WarehouseItem, error)
	AddPart(ctx context.Context, id string, warehouseItemID int64) (SessionView, error)
	SetPartQuantity(ctx context.Context, id string, localID string, quantity int) (SessionView, error)
	RemovePart(ctx context.Context, id string, localID string, confirmer Confirmer) (SessionView, error)
	ToggleCheck(ctx context.Context, id string, mode entities.DiagnosticMode, check entities.CheckID) (SessionView, error)
	Save(ctx context.Context, id string, confirmer Confirmer) (SaveReport, SessionView, error)
}

type OrderSessionUseCase struct {
	store       *SessionStore
	orders      interfaces.IOrderRepository
	diagnostics interfaces.IDiagnosticRepository
	parts       interfaces.IPartsRepository
	warehouse   interfaces.IWarehouseRepository
	payments    IPaymentReconciler
	sync        IOrderSyncUseCase
	log         *logger.Logger

	searchDebounce time.Duration
	searchLimit    int
}

var _ IOrderSessionUseCase = (*OrderSessionUseCase)(nil)

// SessionDeps groups the collaborators of OrderSessionUseCase.
type SessionDeps struct {
	Store          *SessionStore
	Orders         interfaces.IOrderRepository
	Diagnostics    interfaces.IDiagnosticRepository
	Parts          interfaces.IPartsRepository
	Warehouse      interfaces.IWarehouseRepository
	Payments       IPaymentReconciler
	Sync           IOrderSyncUseCase
	Logger         *logger.Logger
	SearchDebounce time.Duration
	SearchLimit    int
}

func NewOrderSessionUseCase(d SessionDeps) *OrderSessionUseCase {
	if d.Store == nil {
		d.Store = NewSessionStore()
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	return &OrderSessionUseCase{
		store:          d.Store,
		orders:         d.Orders,
		diagnostics:    d.Diagnostics,
		parts:          d.Parts,
		warehouse:      d.Warehouse,
		payments:       d.Payments,
		sync:           d.Sync,
		log:            d.Logger,
		searchDebounce: d.SearchDebounce,
		searchLimit:    d.SearchLimit,
	}
}

func (u *OrderSessionUseCase) Open(ctx context.Context, rc entities.RequestContext, orderID int64) (SessionView, error) {
	if orderID <= 0 {
		return SessionView{}, ErrInvalidOrderID
	}
	ctx = u.log.WithOrderID(ctx, orderID)

	order, err := u.orders.GetByID(ctx, rc, orderID)
	if err != nil {
		if isNotFound(err) {
			return SessionView{}, ErrOrderNotFound
		}
		return SessionView{}, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if order.ID == 0 {
		return SessionView{}, ErrOrderNotFound
	}

	s := newOrderSession(uuid.NewString(), rc, NewPartsSearch(u.warehouse, u.searchDebounce, u.searchLimit))
	s.OrderID = order.ID
	s.order = order
	s.persistedStatus = order.Status

	for _, mode := range []entities.DiagnosticMode{entities.DiagnosticModeIncoming, entities.DiagnosticModeExit} {
		remote, err := u.diagnostics.Get(ctx, rc, orderID, mode)
		if err != nil {
			if isNotFound(err) {
				// no record yet: keep the mode defaults
				continue
			}
			return SessionView{}, fmt.Errorf("load %s test of order %d: %w", mode, orderID, err)
		}
		if remote == nil {
			continue
		}
		if err := s.checks.Hydrate(mode, remote); err != nil {
			return SessionView{}, err
		}
	}

	lines, err := u.parts.ListByOrderID(ctx, rc, orderID)
	if err != nil && !isNotFound(err) {
		return SessionView{}, fmt.Errorf("load parts of order %d: %w", orderID, err)
	}

	payment, err := u.payments.Load(ctx, rc, orderID)
	if err != nil {
		return SessionView{}, err
	}
	s.payment = payment
	s.paymentNotes = payment.Notes

	s.price.BeginReload()
	s.parts.Load(lines)
	s.price.Load(s.parts.PartsTotal(), order.LaborAmount, order.EstimatedPrice)
	s.price.EndReload()

	u.store.Put(s)
	u.log.Info(u.log.WithSessionID(ctx, s.ID), "order opened for editing")
	return s.view(), nil
}

func (u *OrderSessionUseCase) Get(ctx context.Context, id string) (SessionView, error) {
	s, err := u.session(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

func (u *OrderSessionUseCase) Close(ctx context.Context, id string) error {
	s, err := u.session(ctx, id)
	if err != nil {
		return err
	}
	if !u.store.Delete(s.ID) {
		return ErrSessionNotFound
	}
	u.log.Debug(u.log.WithSessionID(ctx, id), "edit session closed")
	return nil
}

func (u *OrderSessionUseCase) EditOrder(ctx context.Context, id string, edit OrderEdit) (SessionView, error) {
	if edit.Status != nil && !edit.Status.IsValid() {
		return SessionView{}, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, *edit.Status)
	}
	return u.mutate(ctx, id, func(s *OrderSession) error {
		o := &s.order
		if edit.Status != nil {
			o.Status = *edit.Status
			o.StatusLabel = o.Status.Label()
		}
		setString(&o.FaultDescription, edit.FaultDescription)
		setString(&o.TechnicianName, edit.TechnicianName)
		setString(&o.BillingInfo, edit.BillingInfo)
		setString(&o.Device.UnlockCode, edit.UnlockCode)
		setString(&o.Device.Accessories, edit.Accessories)
		setString(&o.Device.Condition, edit.Condition)
		setString(&s.paymentNotes, edit.PaymentNotes)
		if edit.TechnicianID != nil {
			o.TechnicianID = *edit.TechnicianID
		}
		return nil
	})
}

func (u *OrderSessionUseCase) EditLabor(ctx context.Context, id string, amount float64) (SessionView, error) {
	return u.mutate(ctx, id, func(s *OrderSession) error {
		s.price.OnLaborEdited(pricing.Coerce(amount))
		return nil
	})
}

func (u *OrderSessionUseCase) EditFinalPrice(ctx context.Context, id string, amount float64) (SessionView, error) {
	return u.mutate(ctx, id, func(s *OrderSession) error {
		s.price.OnFinalPriceEdited(pricing.Coerce(amount))
		return nil
	})
}

// SearchParts runs outside the session lock: a slow search must not block edits,
// and a newer search supersedes this one.
func (u *OrderSessionUseCase) SearchParts(ctx context.Context, id string, query string) ([]entities.WarehouseItem, error) {
	s, err := u.session(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	rc := s.rc
	s.mu.Unlock()
	return s.search.Search(ctx, rc, query)
}

func (u *OrderSessionUseCase) AddPart(ctx context.Context, id string, warehouseItemID int64) (SessionView, error) {
	return u.mutate(ctx, id, func(s *OrderSession) error {
		item, ok := s.search.Candidate(warehouseItemID)
		if !ok {
			return ErrCandidateNotFound
		}
		if _, err := s.parts.AddOrIncrement(item); err != nil {
			return err
		}
		s.refreshPartsTotal()
		return nil
	})
}

func (u *OrderSessionUseCase) SetPartQuantity(ctx context.Context, id string, localID string, quantity int) (SessionView, error) {
	return u.mutate(ctx, id, func(s *OrderSession) error {
		if _, err := s.parts.SetQuantity(localID, quantity); err != nil {
			return err
		}
		s.refreshPartsTotal()
		return nil
	})
}

// RemovePart deletes a persisted line remotely right away, once confirmed.
func (u *OrderSessionUseCase) RemovePart(ctx context.Context, id string, localID string, confirmer Confirmer) (SessionView, error) {
	return u.mutate(ctx, id, func(s *OrderSession) error {
		line, _ := s.parts.Line(localID)
		confirm := func() bool {
			return confirmed(ctx, confirmer, fmt.Sprintf("Remove %q from order %s?", line.Description, orderName(s.order)))
		}
		del := func(ctx context.Context, persistedID int64) error {
			return u.parts.Delete(ctx, s.rc, s.OrderID, persistedID)
		}
		if err := s.parts.Remove(ctx, localID, confirm, del); err != nil {
			return err
		}
		s.refreshPartsTotal()
		return nil
	})
}

func (u *OrderSessionUseCase) ToggleCheck(ctx context.Context, id string, mode entities.DiagnosticMode, check entities.CheckID) (SessionView, error) {
	return u.mutate(ctx, id, func(s *OrderSession) error {
		_, err := s.checks.Toggle(mode, check)
		return err
	})
}

func (u *OrderSessionUseCase) Save(ctx context.Context, id string, confirmer Confirmer) (SaveReport, SessionView, error) {
	s, err := u.session(ctx, id)
	if err != nil {
		return SaveReport{}, SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := u.sync.Save(u.log.WithSessionID(ctx, s.ID), s, confirmer)
	if err != nil {
		return SaveReport{}, s.view(), err
	}
	return report, s.view(), nil
}

// session looks an open session up for the caller attached to ctx. A session
// opened for another company reads as not found.
func (u *OrderSessionUseCase) session(ctx context.Context, id string) (*OrderSession, error) {
	s, ok := u.store.Get(strings.TrimSpace(id))
	if !ok {
		return nil, ErrSessionNotFound
	}
	if caller, ok := CallerFrom(ctx); ok && caller.CompanyID != s.rc.CompanyID {
		u.log.Warn(u.log.WithSessionID(ctx, s.ID), "session requested by another company", ErrSessionNotFound)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// mutate applies fn under the session lock and returns the resulting view. The
// view is returned on error too, so callers can show the unchanged state.
func (u *OrderSessionUseCase) mutate(ctx context.Context, id string, fn func(s *OrderSession) error) (SessionView, error) {
	s, err := u.session(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s); err != nil {
		return s.view(), err
	}
	return s.view(), nil
}

type callerKey struct{}

// WithCaller attaches the identity of the desk caller to ctx. Session lookups
// made with such a context only succeed for the company that opened the session.
func WithCaller(ctx context.Context, rc entities.RequestContext) context.Context {
	return context.WithValue(ctx, callerKey{}, rc)
}

func CallerFrom(ctx context.Context) (entities.RequestContext, bool) {
	rc, ok := ctx.Value(callerKey{}).(entities.RequestContext)
	return rc, ok
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrNotFound) || interfaces.IsStatus(err, http.StatusNotFound)
}
