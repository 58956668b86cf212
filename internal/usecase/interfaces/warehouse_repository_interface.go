package interfaces

import (
	"context"

	"repair_desk/internal/domain/entities"
)

type IWarehouseRepository interface {
	Search(ctx context.Context, rc entities.RequestContext, query string, limit int) ([]entities.WarehouseItem, error)
}
