package response

import (
	"time"

	"repair_desk/internal/domain/entities"
)

type CustomerResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type DeviceResponse struct {
	ID           int64  `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number,omitempty"`
	UnlockCode   string `json:"unlock_code,omitempty"`
	Accessories  string `json:"accessories,omitempty"`
	Condition    string `json:"condition,omitempty"`
}

// OrderResponse is the order snapshot, with the customer, device and payment
// type hints nested in it.
type OrderResponse struct {
	ID               int64            `json:"id"`
	GUID             string           `json:"guid"`
	Code             string           `json:"code"`
	Status           string           `json:"status"`
	StatusLabel      string           `json:"status_label"`
	Customer         CustomerResponse `json:"customer"`
	Device           DeviceResponse   `json:"device"`
	PaymentTypeHint  string           `json:"payment_type_hint,omitempty"`
	FaultDescription string           `json:"fault_description"`
	TechnicianID     int64            `json:"technician_id"`
	TechnicianName   string           `json:"technician_name,omitempty"`
	EstimatedPrice   float64          `json:"estimated_price"`
	LaborAmount      float64          `json:"labor_amount"`
	BillingInfo      string           `json:"billing_info,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func FromOrder(o entities.RepairOrder) OrderResponse {
	label := o.StatusLabel
	if label == "" {
		label = o.Status.Label()
	}
	return OrderResponse{
		ID:          o.ID,
		GUID:        o.GUID,
		Code:        o.Code,
		Status:      string(o.Status),
		StatusLabel: label,
		Customer: CustomerResponse{
			ID:       o.Customer.ID,
			FullName: o.Customer.FullName,
			Phone:    o.Customer.Phone,
			Email:    o.Customer.Email,
		},
		Device: DeviceResponse{
			ID:           o.Device.ID,
			Brand:        o.Device.Brand,
			Model:        o.Device.Model,
			SerialNumber: o.Device.SerialNumber,
			UnlockCode:   o.Device.UnlockCode,
			Accessories:  o.Device.Accessories,
			Condition:    o.Device.Condition,
		},
		PaymentTypeHint:  o.PaymentTypeHint,
		FaultDescription: o.FaultDescription,
		TechnicianID:     o.TechnicianID,
		TechnicianName:   o.TechnicianName,
		EstimatedPrice:   o.EstimatedPrice,
		LaborAmount:      o.LaborAmount,
		BillingInfo:      o.BillingInfo,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func (r OrderResponse) ToEntity() entities.RepairOrder {
	return entities.RepairOrder{
		ID:          r.ID,
		GUID:        r.GUID,
		Code:        r.Code,
		Status:      entities.OrderStatus(r.Status),
		StatusLabel: r.StatusLabel,
		Customer: entities.CustomerRef{
			ID:       r.Customer.ID,
			FullName: r.Customer.FullName,
			Phone:    r.Customer.Phone,
			Email:    r.Customer.Email,
		},
		Device: entities.DeviceRef{
			ID:           r.Device.ID,
			Brand:        r.Device.Brand,
			Model:        r.Device.Model,
			SerialNumber: r.Device.SerialNumber,
			UnlockCode:   r.Device.UnlockCode,
			Accessories:  r.Device.Accessories,
			Condition:    r.Device.Condition,
		},
		PaymentTypeHint:  r.PaymentTypeHint,
		FaultDescription: r.FaultDescription,
		TechnicianID:     r.TechnicianID,
		TechnicianName:   r.TechnicianName,
		EstimatedPrice:   r.EstimatedPrice,
		LaborAmount:      r.LaborAmount,
		BillingInfo:      r.BillingInfo,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
