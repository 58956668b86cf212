package request

import "repair_desk/internal/domain/entities"

// PartsLineRequest is one usage line on the wire. ID is the server id; it is
// ignored on insert.
type PartsLineRequest struct {
	ID              int64   `json:"id,omitempty"`
	WarehouseItemID int64   `json:"warehouse_item_id" binding:"required"`
	Description     string  `json:"description"`
	Quantity        int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice       float64 `json:"unit_price" binding:"gte=0"`
}

type PartsBatchRequest struct {
	Lines []PartsLineRequest `json:"lines" binding:"required,dive"`
}

func FromPartsLine(l entities.PartsLine) PartsLineRequest {
	return PartsLineRequest{
		ID:              l.PersistedID,
		WarehouseItemID: l.WarehouseItemID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
	}
}

func FromPartsLines(lines []entities.PartsLine) PartsBatchRequest {
	out := PartsBatchRequest{Lines: make([]PartsLineRequest, 0, len(lines))}
	for _, l := range lines {
		out.Lines = append(out.Lines, FromPartsLine(l))
	}
	return out
}

func (r PartsLineRequest) ToEntity() entities.PartsLine {
	return entities.PartsLine{
		PersistedID:     r.ID,
		WarehouseItemID: r.WarehouseItemID,
		Description:     r.Description,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
	}
}

func (r PartsBatchRequest) ToEntities() []entities.PartsLine {
	out := make([]entities.PartsLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, l.ToEntity())
	}
	return out
}
