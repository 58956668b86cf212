package response

import "repair_desk/internal/domain/entities"

type PartsLineResponse struct {
	ID              int64   `json:"id"`
	WarehouseItemID int64   `json:"warehouse_item_id"`
	Description     string  `json:"description"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	LineTotal       float64 `json:"line_total"`
	AvailableStock  int     `json:"available_stock"`
}

func FromPartsLine(l entities.PartsLine) PartsLineResponse {
	return PartsLineResponse{
		ID:              l.PersistedID,
		WarehouseItemID: l.WarehouseItemID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		LineTotal:       l.LineTotal,
		AvailableStock:  l.AvailableStock,
	}
}

func FromPartsLines(lines []entities.PartsLine) []PartsLineResponse {
	out := make([]PartsLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromPartsLine(l))
	}
	return out
}

func (r PartsLineResponse) ToEntity() entities.PartsLine {
	return entities.PartsLine{
		PersistedID:     r.ID,
		WarehouseItemID: r.WarehouseItemID,
		Description:     r.Description,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		LineTotal:       r.LineTotal,
		AvailableStock:  r.AvailableStock,
	}
}

func ToPartsLines(in []PartsLineResponse) []entities.PartsLine {
	out := make([]entities.PartsLine, 0, len(in))
	for _, r := range in {
		out = append(out, r.ToEntity())
	}
	return out
}

type WarehouseItemResponse struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	UnitPrice      float64 `json:"unit_price"`
	AvailableStock int     `json:"available_stock"`
}

func FromWarehouseItems(items []entities.WarehouseItem) []WarehouseItemResponse {
	out := make([]WarehouseItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, WarehouseItemResponse{
			ID:             it.ID,
			Code:           it.Code,
			Description:    it.Description,
			UnitPrice:      it.UnitPrice,
			AvailableStock: it.AvailableStock,
		})
	}
	return out
}

func ToWarehouseItems(in []WarehouseItemResponse) []entities.WarehouseItem {
	out := make([]entities.WarehouseItem, 0, len(in))
	for _, r := range in {
		out = append(out, entities.WarehouseItem{
			ID:             r.ID,
			Code:           r.Code,
			Description:    r.Description,
			UnitPrice:      r.UnitPrice,
			AvailableStock: r.AvailableStock,
		})
	}
	return out
}
