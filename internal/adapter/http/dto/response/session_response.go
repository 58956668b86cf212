package response

import (
	"repair_desk/internal/domain/checklist"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/pricing"
	"repair_desk/internal/usecase"
)

type SessionPartsLineResponse struct {
	LocalID string `json:"local_id"`
	PartsLineResponse
}

// ChecklistResponse is one diagnostic mode as shown on the desk: the flag of
// every check and whether the check can be toggled right now.
type ChecklistResponse struct {
	Mode      string          `json:"mode"`
	PoweredOn bool            `json:"powered_on"`
	Checks    map[string]bool `json:"checks"`
	Disabled  []string        `json:"disabled,omitempty"`
}

type SessionResponse struct {
	ID              string                     `json:"id"`
	Order           OrderResponse              `json:"order"`
	PersistedStatus string                     `json:"persisted_status"`
	Price           pricing.PriceState         `json:"price"`
	Parts           []SessionPartsLineResponse `json:"parts"`
	Incoming        ChecklistResponse          `json:"incoming_test"`
	Exit            ChecklistResponse          `json:"exit_test"`
	Payment         *PaymentResponse           `json:"payment,omitempty"`
	PaymentNotes    string                     `json:"payment_notes,omitempty"`
	SearchQuery     string                     `json:"search_query,omitempty"`
	SearchResults   []WarehouseItemResponse    `json:"search_results"`
}

func FromSession(v usecase.SessionView) SessionResponse {
	parts := make([]SessionPartsLineResponse, 0, len(v.Parts))
	for _, l := range v.Parts {
		parts = append(parts, SessionPartsLineResponse{LocalID: l.LocalID, PartsLineResponse: FromPartsLine(l)})
	}
	res := SessionResponse{
		ID:              v.ID,
		Order:           FromOrder(v.Order),
		PersistedStatus: string(v.PersistedStatus),
		Price:           v.Price,
		Parts:           parts,
		Incoming:        FromChecklist(v.Incoming),
		Exit:            FromChecklist(v.Exit),
		PaymentNotes:    v.PaymentNotes,
		SearchQuery:     v.SearchQuery,
		SearchResults:   FromWarehouseItems(v.SearchResults),
	}
	if v.Payment.Exists() {
		p := FromPayment(v.Payment)
		res.Payment = &p
	}
	return res
}

func FromChecklist(s checklist.State) ChecklistResponse {
	res := ChecklistResponse{
		Mode:      string(s.Mode),
		PoweredOn: s.PoweredOn(),
		Checks:    make(map[string]bool, len(s.Flags)),
	}
	for _, id := range entities.AllChecks {
		res.Checks[string(id)] = s.Flags[id]
		if s.InteractionDisabled(id) {
			res.Disabled = append(res.Disabled, string(id))
		}
	}
	return res
}

type SaveResponse struct {
	Outcome string          `json:"outcome"`
	Failed  []string        `json:"failed,omitempty"`
	Message string          `json:"message"`
	Session SessionResponse `json:"session"`
}

func FromSave(r usecase.SaveReport, v usecase.SessionView) SaveResponse {
	return SaveResponse{
		Outcome: string(r.Outcome),
		Failed:  r.Failed,
		Message: r.Message,
		Session: FromSession(v),
	}
}
