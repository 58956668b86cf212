package interfaces

import (
	"context"

	"repair_desk/internal/domain/entities"
)

// IPartsRepository persists the parts usage lines of an order.
// Lines travel with PersistedID as their id; LocalID never leaves the desk.
type IPartsRepository interface {
	ListByOrderID(ctx context.Context, rc entities.RequestContext, orderID int64) ([]entities.PartsLine, error)
	InsertBatch(ctx context.Context, rc entities.RequestContext, orderID int64, lines []entities.PartsLine) ([]entities.PartsLine, error)
	Update(ctx context.Context, rc entities.RequestContext, orderID int64, line entities.PartsLine) (entities.PartsLine, error)
	Delete(ctx context.Context, rc entities.RequestContext, orderID int64, lineID int64) error
}
