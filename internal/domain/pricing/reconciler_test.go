package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconciler_FinalPriceEdit(t *testing.T) {
	r := NewReconciler()
	r.OnPartsTotalChanged(50)
	r.OnFinalPriceEdited(122)

	s := r.State()
	assert.Equal(t, 50.0, s.PartsTotal)
	assert.Equal(t, 50.0, s.LaborAmount)
	assert.Equal(t, 22.0, s.VATAmount)
	assert.Equal(t, 122.0, s.FinalPrice)
	assert.Equal(t, FieldFinalPrice, s.LastEdited)
}

func TestReconciler_NegativeLaborIsKept(t *testing.T) {
	r := NewReconciler()
	r.Load(100, 0, 122)
	r.OnFinalPriceEdited(61)

	s := r.State()
	assert.Equal(t, -50.0, s.LaborAmount)
	assert.Equal(t, 61.0, s.FinalPrice)
	assert.Equal(t, 11.0, s.VATAmount)
}

func TestReconciler_LaborEdit(t *testing.T) {
	r := NewReconciler()
	r.Load(30, 0, 0)
	r.OnLaborEdited(45.5)

	s := r.State()
	assert.Equal(t, 45.5, s.LaborAmount)
	assert.Equal(t, 92.11, s.FinalPrice)
	assert.Equal(t, 16.61, s.VATAmount)
	assert.Equal(t, FieldLabor, s.LastEdited)
}

func TestReconciler_PartsChangeRederivesLabor(t *testing.T) {
	r := NewReconciler()
	r.Load(0, 100, 122)
	r.OnPartsTotalChanged(30)

	s := r.State()
	assert.Equal(t, 30.0, s.PartsTotal)
	assert.Equal(t, 70.0, s.LaborAmount)
	assert.Equal(t, 122.0, s.FinalPrice)
}

func TestReconciler_PartsChangeBelowEpsilonIsIgnored(t *testing.T) {
	r := NewReconciler()
	r.Load(10, 10, 24.41)
	r.OnPartsTotalChanged(10)

	assert.Equal(t, 10.0, r.State().LaborAmount)
}

func TestReconciler_ReloadGuard(t *testing.T) {
	r := NewReconciler()
	r.BeginReload()
	r.Load(0, 100, 122)
	r.OnPartsTotalChanged(12)
	r.OnPartsTotalChanged(30)
	assert.True(t, r.Reloading())
	r.EndReload()

	s := r.State()
	assert.Equal(t, 30.0, s.PartsTotal)
	assert.Equal(t, 100.0, s.LaborAmount)
	assert.Equal(t, 122.0, s.FinalPrice)
}
