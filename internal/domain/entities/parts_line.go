package entities

// PartsLine is one stocked item consumed by an order.
//
// PersistedID is zero until the line exists remotely; LocalID is generated on the
// desk and stays stable for the whole editing session. AvailableStock is the stock
// snapshot taken when the line was added: an advisory upper bound for Quantity,
// never revalidated against the warehouse.
type PartsLine struct {
	LocalID         string  `json:"local_id"`
	PersistedID     int64   `json:"persisted_id,omitempty"`
	WarehouseItemID int64   `json:"warehouse_item_id"`
	Description     string  `json:"description"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	LineTotal       float64 `json:"line_total"`
	AvailableStock  int     `json:"available_stock"`
}

func (l PartsLine) IsPersisted() bool {
	return l.PersistedID > 0
}

// WarehouseItem is a stock entry as returned by the warehouse search.
type WarehouseItem struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	UnitPrice      float64 `json:"unit_price"`
	AvailableStock int     `json:"available_stock"`
}
