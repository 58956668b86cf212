package pricing

// Field names the price field the user edited last.
type Field string

const (
	FieldLabor      Field = "labor"
	FieldFinalPrice Field = "final_price"
)

// PriceState is the derived, read-only view of an order's figures.
type PriceState struct {
	PartsTotal  float64 `json:"parts_total"`
	LaborAmount float64 `json:"labor_amount"`
	VATAmount   float64 `json:"vat_amount"`
	FinalPrice  float64 `json:"final_price"`
	LastEdited  Field   `json:"last_edited"`
}

// Reconciler keeps finalPrice = 1.22 × (partsTotal + laborAmount) under edits
// coming from the parts ledger, the labor field and the final price field.
// It performs no I/O and never fails. It is not safe for concurrent use.
type Reconciler struct {
	partsTotal float64
	labor      float64
	final      float64
	lastEdited Field
	reloading  bool
}

func NewReconciler() *Reconciler {
	return &Reconciler{lastEdited: FieldFinalPrice}
}

// BeginReload suspends parts-driven labor recomputes until EndReload.
func (r *Reconciler) BeginReload() {
	r.reloading = true
}

func (r *Reconciler) EndReload() {
	r.reloading = false
}

func (r *Reconciler) Reloading() bool {
	return r.reloading
}

// Load sets the persisted figures as they are, without deriving anything.
func (r *Reconciler) Load(partsTotal, labor, final float64) {
	r.partsTotal = Round2(partsTotal)
	r.labor = Round2(labor)
	r.final = Round2(final)
	r.lastEdited = FieldFinalPrice
}

// OnPartsTotalChanged records a new parts total and re-derives labor from the
// final price. Changes below LaborEpsilon are not committed.
func (r *Reconciler) OnPartsTotalChanged(newPartsTotal float64) {
	r.partsTotal = Round2(newPartsTotal)
	if r.reloading {
		return
	}
	labor := LaborFromFinal(r.final, r.partsTotal)
	if dec(labor).Sub(dec(r.labor)).Abs().GreaterThan(laborEpsilon) {
		r.labor = labor
	}
}

func (r *Reconciler) OnLaborEdited(newLabor float64) {
	r.labor = Round2(newLabor)
	r.final = FinalFromLabor(r.partsTotal, r.labor)
	r.lastEdited = FieldLabor
}

func (r *Reconciler) OnFinalPriceEdited(newFinal float64) {
	r.final = Round2(newFinal)
	r.labor = LaborFromFinal(r.final, r.partsTotal)
	r.lastEdited = FieldFinalPrice
}

func (r *Reconciler) State() PriceState {
	return PriceState{
		PartsTotal:  r.partsTotal,
		LaborAmount: r.labor,
		VATAmount:   VAT(r.partsTotal, r.labor),
		FinalPrice:  r.final,
		LastEdited:  r.lastEdited,
	}
}
