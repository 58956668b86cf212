package usecase

import (
	"context"
	"errors"
	"fmt"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/pricing"
	"repair_desk/internal/usecase/interfaces"
)

var ErrPaymentIDNotAssigned = errors.New("payment created without an id")

// PaymentUpsert carries the figures submitted on save. ExistingID is the id the
// session holds from a previous load or create; zero means none.
type PaymentUpsert struct {
	OrderID     int64
	PartsAmount float64
	LaborAmount float64
	Notes       string
	ExistingID  int64
}

// IPaymentReconciler keeps exactly one payment resource per order.
//
// The create-vs-update discriminator is only "do we already hold an id": the
// existing payment must be loaded when the order is opened, before the first save.
type IPaymentReconciler interface {
	Load(ctx context.Context, rc entities.RequestContext, orderID int64) (entities.PaymentRecord, error)
	Upsert(ctx context.Context, rc entities.RequestContext, in PaymentUpsert) (entities.PaymentRecord, error)
}

type PaymentReconciler struct {
	repo interfaces.IPaymentRepository
}

var _ IPaymentReconciler = (*PaymentReconciler)(nil)

func NewPaymentReconciler(repo interfaces.IPaymentRepository) *PaymentReconciler {
	return &PaymentReconciler{repo: repo}
}

// Load returns the order's payment, or a zero record when there is none yet.
func (p *PaymentReconciler) Load(ctx context.Context, rc entities.RequestContext, orderID int64) (entities.PaymentRecord, error) {
	rec, err := p.repo.GetByOrderID(ctx, rc, orderID)
	if err != nil {
		if isNotFound(err) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, fmt.Errorf("load payment of order %d: %w", orderID, err)
	}
	return rec, nil
}

func (p *PaymentReconciler) Upsert(ctx context.Context, rc entities.RequestContext, in PaymentUpsert) (entities.PaymentRecord, error) {
	rec := entities.PaymentRecord{
		ID:          in.ExistingID,
		OrderID:     in.OrderID,
		PartsAmount: pricing.Round2(in.PartsAmount),
		LaborAmount: pricing.Round2(in.LaborAmount),
		Notes:       in.Notes,
	}

	if in.ExistingID > 0 {
		updated, err := p.repo.Update(ctx, rc, rec)
		if err != nil {
			return entities.PaymentRecord{}, fmt.Errorf("update payment %d: %w", in.ExistingID, err)
		}
		// the resource id never changes on update
		updated.ID = in.ExistingID
		return updated, nil
	}

	created, err := p.repo.Create(ctx, rc, rec)
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("create payment for order %d: %w", in.OrderID, err)
	}
	if !created.Exists() {
		return entities.PaymentRecord{}, ErrPaymentIDNotAssigned
	}
	return created, nil
}
