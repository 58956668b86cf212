package request

import "repair_desk/internal/domain/entities"

// PaymentRequest is the body of POST payments and PUT payments/{id}. VAT and
// total are not accepted: the service computes them.
type PaymentRequest struct {
	OrderID     int64   `json:"order_id" binding:"required"`
	PartsAmount float64 `json:"parts_amount"`
	LaborAmount float64 `json:"labor_amount"`
	Notes       string  `json:"notes,omitempty"`
}

func FromPayment(p entities.PaymentRecord) PaymentRequest {
	return PaymentRequest{
		OrderID:     p.OrderID,
		PartsAmount: p.PartsAmount,
		LaborAmount: p.LaborAmount,
		Notes:       p.Notes,
	}
}

func (r PaymentRequest) ToEntity(id int64) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:          id,
		OrderID:     r.OrderID,
		PartsAmount: r.PartsAmount,
		LaborAmount: r.LaborAmount,
		Notes:       r.Notes,
	}
}
