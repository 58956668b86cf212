package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
	"repair_desk/pkg/logger"

	"go.uber.org/multierr"
)

var (
	ErrConfirmationRequired = errors.New("status change requires confirmation")
	ErrOrderNotFound        = errors.New("order not found")
)

// Sub-resources saved after the order core fields, in this order.
const (
	ResourceIncomingTest = "incoming-test"
	ResourceExitTest     = "exit-test"
	ResourceParts        = "parts"
	ResourcePayment      = "payment"
	ResourceStatus       = "status"
)

type SaveOutcome string

const (
	SaveOutcomeSaved   SaveOutcome = "saved"
	SaveOutcomePartial SaveOutcome = "partial"
)

// SaveReport is the single message shown to the user after a save. Failed names
// the sub-resources that were not persisted.
type SaveReport struct {
	Outcome SaveOutcome
	Failed  []string
	Message string
}

// SaveRecorder counts save outcomes.
type SaveRecorder interface {
	RecordSave(outcome string, failed []string)
}

// IOrderSyncUseCase persists an edited order and its sub-resources.
//
// Sequencing of a save:
//   - validate locally; nothing is sent when the order is invalid
//   - a move into COMPLETED or DELIVERED needs the confirmer to agree first
//   - PUT the order core fields; a failure aborts everything else
//   - incoming test, exit test, parts, payment: each failure is collected and the
//     next step still runs
//   - PUT the status last, only when it changed
//
// The caller must hold the session lock.
type IOrderSyncUseCase interface {
	Save(ctx context.Context, s *OrderSession, confirmer Confirmer) (SaveReport, error)
}

type OrderSyncUseCase struct {
	orders      interfaces.IOrderRepository
	diagnostics interfaces.IDiagnosticRepository
	parts       interfaces.IPartsRepository
	payments    IPaymentReconciler
	validator   *OrderValidator
	recorder    SaveRecorder
	log         *logger.Logger
}

var _ IOrderSyncUseCase = (*OrderSyncUseCase)(nil)

func NewOrderSyncUseCase(
	orders interfaces.IOrderRepository,
	diagnostics interfaces.IDiagnosticRepository,
	parts interfaces.IPartsRepository,
	payments IPaymentReconciler,
	recorder SaveRecorder,
	log *logger.Logger,
) *OrderSyncUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderSyncUseCase{
		orders:      orders,
		diagnostics: diagnostics,
		parts:       parts,
		payments:    payments,
		validator:   NewOrderValidator(),
		recorder:    recorder,
		log:         log,
	}
}

func (u *OrderSyncUseCase) Save(ctx context.Context, s *OrderSession, confirmer Confirmer) (SaveReport, error) {
	ctx = u.log.WithOrderID(ctx, s.OrderID)
	order := s.currentOrder()

	if err := u.validator.Validate(order); err != nil {
		u.log.Info(ctx, "save rejected by validation")
		return SaveReport{}, err
	}

	statusChanged := s.statusChanged()
	if statusChanged && order.Status.IsTerminal() {
		prompt := fmt.Sprintf("Mark order %s as %s?", order.Code, order.Status.Label())
		if !confirmed(ctx, confirmer, prompt) {
			return SaveReport{}, ErrConfirmationRequired
		}
	}

	// The status travels through its own route at the end.
	core := order
	core.Status = s.persistedStatus
	saved, err := u.orders.Update(ctx, s.rc, core)
	if err != nil {
		u.log.Error(ctx, "order core save failed", err)
		return SaveReport{}, fmt.Errorf("save order %d: %w", s.OrderID, err)
	}
	if saved.ID == 0 {
		return SaveReport{}, ErrOrderNotFound
	}
	s.applySavedOrder(saved)

	var (
		failed []string
		errs   error
	)
	step := func(name string, fn func() error) {
		if err := fn(); err != nil {
			u.log.Warn(u.log.WithField(ctx, "resource", name), "sub-resource save failed", err)
			failed = append(failed, name)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	step(ResourceIncomingTest, func() error {
		return u.diagnostics.Put(ctx, s.rc, s.OrderID, entities.DiagnosticModeIncoming, s.checks.Incoming.Remote())
	})
	step(ResourceExitTest, func() error {
		return u.diagnostics.Put(ctx, s.rc, s.OrderID, entities.DiagnosticModeExit, s.checks.Exit.Remote())
	})
	step(ResourceParts, func() error {
		return u.syncParts(ctx, s)
	})
	step(ResourcePayment, func() error {
		ps := s.price.State()
		rec, err := u.payments.Upsert(ctx, s.rc, PaymentUpsert{
			OrderID:     s.OrderID,
			PartsAmount: ps.PartsTotal,
			LaborAmount: ps.LaborAmount,
			Notes:       s.paymentNotes,
			ExistingID:  s.payment.ID,
		})
		if err != nil {
			return err
		}
		s.payment = rec
		return nil
	})
	if statusChanged {
		step(ResourceStatus, func() error {
			updated, err := u.orders.UpdateStatus(ctx, s.rc, s.OrderID, order.Status)
			if err != nil {
				return err
			}
			s.persistedStatus = order.Status
			if updated.StatusLabel != "" {
				s.order.StatusLabel = updated.StatusLabel
			}
			return nil
		})
	}

	report := buildReport(order, failed)
	if errs != nil {
		u.log.Warn(ctx, "order saved partially", errs)
	} else {
		u.log.Info(ctx, "order saved")
	}
	if u.recorder != nil {
		u.recorder.RecordSave(string(report.Outcome), report.Failed)
	}
	return report, nil
}

// syncParts sends the ledger diff and reloads the ledger from the repository.
// Lines whose update failed keep their local quantity after the reload.
func (u *OrderSyncUseCase) syncParts(ctx context.Context, s *OrderSession) error {
	diff := s.parts.DiffForSync()
	if len(diff.ToInsert) > 0 {
		inserted, err := u.parts.InsertBatch(ctx, s.rc, s.OrderID, diff.ToInsert)
		if err != nil {
			return err
		}
		s.parts.AttachPersisted(inserted)
	}

	var errs error
	pending := make(map[int64]int)
	for _, line := range diff.ToUpdate {
		if _, err := u.parts.Update(ctx, s.rc, s.OrderID, line); err != nil {
			pending[line.PersistedID] = line.Quantity
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line.PersistedID, err))
		}
	}

	remote, err := u.parts.ListByOrderID(ctx, s.rc, s.OrderID)
	if err != nil {
		return multierr.Append(errs, fmt.Errorf("reload: %w", err))
	}
	s.reloadParts(remote)
	if len(pending) > 0 {
		for _, line := range s.parts.Lines() {
			qty, ok := pending[line.PersistedID]
			if !ok {
				continue
			}
			// the local id comes from Lines() above, so it is always found
			if _, err := s.parts.SetQuantity(line.LocalID, qty); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("restore line %d: %w", line.PersistedID, err))
			}
		}
		s.refreshPartsTotal()
	}
	return errs
}

func buildReport(order entities.RepairOrder, failed []string) SaveReport {
	if len(failed) == 0 {
		return SaveReport{
			Outcome: SaveOutcomeSaved,
			Message: fmt.Sprintf("Order %s saved.", orderName(order)),
		}
	}
	return SaveReport{
		Outcome: SaveOutcomePartial,
		Failed:  failed,
		Message: fmt.Sprintf("Order %s saved, but these could not be saved: %s.", orderName(order), strings.Join(failed, ", ")),
	}
}

func orderName(o entities.RepairOrder) string {
	if o.Code != "" {
		return o.Code
	}
	return fmt.Sprint(o.ID)
}
