package response

import (
	"time"

	"repair_desk/internal/domain/entities"
)

type PaymentResponse struct {
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

func FromPayment(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		PartsAmount: p.PartsAmount,
		LaborAmount: p.LaborAmount,
		VATAmount:   p.VATAmount,
		TotalAmount: p.TotalAmount,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r PaymentResponse) ToEntity() entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:          r.ID,
		OrderID:     r.OrderID,
		PartsAmount: r.PartsAmount,
		LaborAmount: r.LaborAmount,
		VATAmount:   r.VATAmount,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
