package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/pricing"
	"repair_desk/internal/usecase"
)

// Amount is a currency value typed by a user: a JSON number or a free-text
// string such as "12,50". Anything that is not a number reads as 0.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(pricing.ParseAmount(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(pricing.Coerce(f))
	return nil
}

type AmountRequest struct {
	Amount Amount `json:"amount"`
}

// SessionOrderPatchRequest edits the core fields of an open order. Absent fields
// are left untouched.
type SessionOrderPatchRequest struct {
	Status           *string `json:"status,omitempty"`
	FaultDescription *string `json:"fault_description,omitempty"`
	TechnicianID     *int64  `json:"technician_id,omitempty"`
	TechnicianName   *string `json:"technician_name,omitempty"`
	BillingInfo      *string `json:"billing_info,omitempty"`
	UnlockCode       *string `json:"unlock_code,omitempty"`
	Accessories      *string `json:"accessories,omitempty"`
	Condition        *string `json:"condition,omitempty"`
	PaymentNotes     *string `json:"payment_notes,omitempty"`
}

func (r SessionOrderPatchRequest) ToEdit() usecase.OrderEdit {
	edit := usecase.OrderEdit{
		FaultDescription: r.FaultDescription,
		TechnicianID:     r.TechnicianID,
		TechnicianName:   r.TechnicianName,
		BillingInfo:      r.BillingInfo,
		UnlockCode:       r.UnlockCode,
		Accessories:      r.Accessories,
		Condition:        r.Condition,
		PaymentNotes:     r.PaymentNotes,
	}
	if r.Status != nil {
		st := entities.OrderStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		edit.Status = &st
	}
	return edit
}

type AddPartRequest struct {
	WarehouseItemID int64 `json:"warehouse_item_id" binding:"required"`
}

type PartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type OpenSessionRequest struct {
	OrderID int64 `json:"order_id" binding:"required,gt=0"`
}
