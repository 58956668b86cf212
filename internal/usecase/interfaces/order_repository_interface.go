package interfaces

import (
	"context"

	"repair_desk/internal/domain/entities"
)

// IOrderRepository abstracts persistence of repair orders.
//
// The desk needs to:
//   - load an order snapshot (customer, device and payment-type hints included)
//   - persist the core fields; the status is left untouched by Update
//   - persist a status transition on its own, as the last step of a save
//
// A zero-value order (ID == 0) with a nil error means "not found".
type IOrderRepository interface {
	GetByID(ctx context.Context, rc entities.RequestContext, id int64) (entities.RepairOrder, error)
	Update(ctx context.Context, rc entities.RequestContext, o entities.RepairOrder) (entities.RepairOrder, error)
	UpdateStatus(ctx context.Context, rc entities.RequestContext, id int64, status entities.OrderStatus) (entities.RepairOrder, error)
}
