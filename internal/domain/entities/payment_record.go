package entities

import "time"

// PaymentRecord is the single payment resource tied to an order.
//
// A zero ID means the record was never persisted; holding a server-assigned ID is
// the only thing that turns the next save into an update instead of a create.
// VATAmount and TotalAmount are computed by the repository service and only echoed
// back for display.
type PaymentRecord struct {
	ID          int64     `json:"id"`
	OrderID     int64     `json:"order_id"`
	PartsAmount float64   `json:"parts_amount"`
	LaborAmount float64   `json:"labor_amount"`
	VATAmount   float64   `json:"vat_amount"`
	TotalAmount float64   `json:"total_amount"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p PaymentRecord) Exists() bool {
	return p.ID > 0
}
