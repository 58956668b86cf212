package request

import (
	"strings"

	"repair_desk/internal/domain/entities"
)

// OrderUpdateRequest is the body of PUT order/{id}. It carries the core fields
// only; the status has its own route.
type OrderUpdateRequest struct {
	FaultDescription string  `json:"fault_description"`
	TechnicianID     int64   `json:"technician_id"`
	TechnicianName   string  `json:"technician_name,omitempty"`
	EstimatedPrice   float64 `json:"estimated_price"`
	LaborAmount      float64 `json:"labor_amount"`
	BillingInfo      string  `json:"billing_info,omitempty"`
	UnlockCode       string  `json:"unlock_code,omitempty"`
	Accessories      string  `json:"accessories,omitempty"`
	Condition        string  `json:"condition,omitempty"`
}

func FromOrder(o entities.RepairOrder) OrderUpdateRequest {
	return OrderUpdateRequest{
		FaultDescription: o.FaultDescription,
		TechnicianID:     o.TechnicianID,
		TechnicianName:   o.TechnicianName,
		EstimatedPrice:   o.EstimatedPrice,
		LaborAmount:      o.LaborAmount,
		BillingInfo:      o.BillingInfo,
		UnlockCode:       o.Device.UnlockCode,
		Accessories:      o.Device.Accessories,
		Condition:        o.Device.Condition,
	}
}

// ToEntity returns an order holding only the editable fields.
func (r OrderUpdateRequest) ToEntity(id int64) entities.RepairOrder {
	return entities.RepairOrder{
		ID:               id,
		FaultDescription: strings.TrimSpace(r.FaultDescription),
		TechnicianID:     r.TechnicianID,
		TechnicianName:   strings.TrimSpace(r.TechnicianName),
		EstimatedPrice:   r.EstimatedPrice,
		LaborAmount:      r.LaborAmount,
		BillingInfo:      r.BillingInfo,
		Device: entities.DeviceRef{
			UnlockCode:  r.UnlockCode,
			Accessories: r.Accessories,
			Condition:   r.Condition,
		},
	}
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
