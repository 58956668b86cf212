package entities

import "time"

// OrderStatus represents the lifecycle of a repair order.
//
// Domain notes:
//   - COMPLETED and DELIVERED are terminal: moving an order into them needs an
//     explicit confirmation on the desk before anything is persisted.
//   - The status is persisted through its own route, after the rest of the order.
type OrderStatus string

const (
	OrderStatusReceived     OrderStatus = "RECEIVED"
	OrderStatusDiagnosis    OrderStatus = "DIAGNOSIS"
	OrderStatusWaitingParts OrderStatus = "WAITING_PARTS"
	OrderStatusInRepair     OrderStatus = "IN_REPAIR"
	OrderStatusCompleted    OrderStatus = "COMPLETED"
	OrderStatusDelivered    OrderStatus = "DELIVERED"
	OrderStatusCancelled    OrderStatus = "CANCELLED"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusReceived:     "Received",
	OrderStatusDiagnosis:    "In diagnosis",
	OrderStatusWaitingParts: "Waiting for parts",
	OrderStatusInRepair:     "In repair",
	OrderStatusCompleted:    "Completed",
	OrderStatusDelivered:    "Delivered",
	OrderStatusCancelled:    "Cancelled",
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label returns the display label; unknown codes are shown as-is.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusDelivered
}

type CustomerRef struct {
	ID       int64  `json:"id" dynamodbav:"id" validate:"gt=0"`
	FullName string `json:"full_name" dynamodbav:"full_name" validate:"required"`
	Phone    string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Email    string `json:"email,omitempty" dynamodbav:"email,omitempty"`
}

// DeviceRef is the device snapshot carried by the order. UnlockCode, Accessories
// and Condition are the device fields editable from the order screen.
type DeviceRef struct {
	ID           int64  `json:"id" dynamodbav:"id"`
	Brand        string `json:"brand" dynamodbav:"brand" validate:"required"`
	Model        string `json:"model" dynamodbav:"model" validate:"required"`
	SerialNumber string `json:"serial_number,omitempty" dynamodbav:"serial_number,omitempty"`
	UnlockCode   string `json:"unlock_code,omitempty" dynamodbav:"unlock_code,omitempty"`
	Accessories  string `json:"accessories,omitempty" dynamodbav:"accessories,omitempty"`
	Condition    string `json:"condition,omitempty" dynamodbav:"condition,omitempty"`
}

// RepairOrder is the repair job tracked through intake, diagnosis, repair and delivery.
//
// Monetary representation:
//   - EstimatedPrice is the final, VAT-inclusive price.
//   - LaborAmount is net of VAT; it may be negative when it carries a discount.
type RepairOrder struct {
	ID               int64       `json:"id"`
	GUID             string      `json:"guid"`
	Code             string      `json:"code"`
	CompanyID        string      `json:"company_id,omitempty"`
	Status           OrderStatus `json:"status"`
	StatusLabel      string      `json:"status_label"`
	Customer         CustomerRef `json:"customer"`
	Device           DeviceRef   `json:"device"`
	PaymentTypeHint  string      `json:"payment_type_hint,omitempty"`
	FaultDescription string      `json:"fault_description"`
	TechnicianID     int64       `json:"technician_id" validate:"gt=0"`
	TechnicianName   string      `json:"technician_name,omitempty"`
	EstimatedPrice   float64     `json:"estimated_price" validate:"gt=0"`
	LaborAmount      float64     `json:"labor_amount"`
	BillingInfo      string      `json:"billing_info,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
