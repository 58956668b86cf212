package interfaces

import (
	"context"

	"repair_desk/internal/domain/entities"
)

// IPaymentRepository persists the single payment record of an order.
//
// GetByOrderID returns a zero-value record when the order has no payment yet.
// VAT and total are computed by the implementation from the parts and labor
// amounts; callers read them back from the returned record.
type IPaymentRepository interface {
	GetByOrderID(ctx context.Context, rc entities.RequestContext, orderID int64) (entities.PaymentRecord, error)
	Create(ctx context.Context, rc entities.RequestContext, p entities.PaymentRecord) (entities.PaymentRecord, error)
	Update(ctx context.Context, rc entities.RequestContext, p entities.PaymentRecord) (entities.PaymentRecord, error)
}
