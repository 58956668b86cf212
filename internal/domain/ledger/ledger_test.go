package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"repair_desk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger() *Ledger {
	n := 0
	l := New()
	l.newID = func() string {
		n++
		return fmt.Sprintf("local-%d", n)
	}
	return l
}

func screen(stock int) entities.WarehouseItem {
	return entities.WarehouseItem{ID: 10, Code: "SCR-1", Description: "Display assembly", UnitPrice: 49.9, AvailableStock: stock}
}

func TestLedger_AddOrIncrement(t *testing.T) {
	t.Run("appends a new line", func(t *testing.T) {
		l := newTestLedger()
		line, err := l.AddOrIncrement(screen(3))
		require.NoError(t, err)
		assert.Equal(t, "local-1", line.LocalID)
		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, 49.9, line.LineTotal)
		assert.False(t, line.IsPersisted())
	})

	t.Run("merges same warehouse item and clamps to stock", func(t *testing.T) {
		l := newTestLedger()
		for i := 0; i < 5; i++ {
			_, err := l.AddOrIncrement(screen(2))
			require.NoError(t, err)
		}
		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 99.8, lines[0].LineTotal)
	})

	t.Run("newer stock snapshot lowers the bound", func(t *testing.T) {
		l := newTestLedger()
		_, _ = l.AddOrIncrement(screen(5))
		_, _ = l.AddOrIncrement(screen(5))
		_, _ = l.AddOrIncrement(screen(5))
		line, err := l.AddOrIncrement(screen(2))
		require.NoError(t, err)
		assert.Equal(t, 2, line.Quantity)
		assert.Equal(t, 2, line.AvailableStock)
	})

	t.Run("out of stock", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.AddOrIncrement(screen(0))
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.Empty(t, l.Lines())
	})
}

func TestLedger_SetQuantity(t *testing.T) {
	l := newTestLedger()
	line, _ := l.AddOrIncrement(screen(4))

	for _, tc := range []struct{ requested, want int }{
		{3, 3}, {0, 1}, {-7, 1}, {99, 4}, {4, 4},
	} {
		got, err := l.SetQuantity(line.LocalID, tc.requested)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Quantity, "requested %d", tc.requested)
		assert.True(t, got.Quantity > 0 && got.Quantity <= got.AvailableStock)
	}

	_, err := l.SetQuantity("missing", 1)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestLedger_Remove(t *testing.T) {
	persisted := []entities.PartsLine{{PersistedID: 7, WarehouseItemID: 10, Quantity: 1, UnitPrice: 20, AvailableStock: 3}}

	t.Run("local line goes without io", func(t *testing.T) {
		l := newTestLedger()
		line, _ := l.AddOrIncrement(screen(1))
		err := l.Remove(context.Background(), line.LocalID, nil, func(context.Context, int64) error {
			t.Fatalf("remote delete must not be called")
			return nil
		})
		require.NoError(t, err)
		assert.Empty(t, l.Lines())
	})

	t.Run("declined confirmation keeps the line and skips delete", func(t *testing.T) {
		l := newTestLedger()
		l.Load(persisted)
		calls := 0
		err := l.Remove(context.Background(), "local-1", func() bool { return false }, func(context.Context, int64) error {
			calls++
			return nil
		})
		assert.ErrorIs(t, err, ErrRemovalNotConfirmed)
		assert.Equal(t, 0, calls)
		assert.Len(t, l.Lines(), 1)
	})

	t.Run("remote failure keeps the line", func(t *testing.T) {
		l := newTestLedger()
		l.Load(persisted)
		boom := errors.New("500")
		err := l.Remove(context.Background(), "local-1", func() bool { return true }, func(context.Context, int64) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Len(t, l.Lines(), 1)
	})

	t.Run("confirmed delete removes the line", func(t *testing.T) {
		l := newTestLedger()
		l.Load(persisted)
		var deleted int64
		err := l.Remove(context.Background(), "local-1", func() bool { return true }, func(_ context.Context, id int64) error {
			deleted = id
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
		assert.Empty(t, l.Lines())
	})

	t.Run("unknown line", func(t *testing.T) {
		l := newTestLedger()
		assert.ErrorIs(t, l.Remove(context.Background(), "nope", nil, nil), ErrLineNotFound)
	})
}

func TestLedger_DiffForSync(t *testing.T) {
	l := newTestLedger()
	l.Load([]entities.PartsLine{{PersistedID: 7, WarehouseItemID: 1, Quantity: 2, UnitPrice: 5, AvailableStock: 2}})
	_, _ = l.AddOrIncrement(entities.WarehouseItem{ID: 2, UnitPrice: 3, AvailableStock: 9})

	d := l.DiffForSync()
	require.Len(t, d.ToUpdate, 1)
	require.Len(t, d.ToInsert, 1)
	for _, line := range d.ToInsert {
		assert.False(t, line.IsPersisted())
	}
	for _, line := range d.ToUpdate {
		assert.True(t, line.IsPersisted())
	}
	assert.False(t, d.Empty())
	assert.True(t, newTestLedger().DiffForSync().Empty())
}

func TestLedger_ReconcileAfterSync(t *testing.T) {
	l := newTestLedger()
	l.Load([]entities.PartsLine{{PersistedID: 7, WarehouseItemID: 1, Quantity: 2, UnitPrice: 5, AvailableStock: 4}})
	added, _ := l.AddOrIncrement(entities.WarehouseItem{ID: 2, Description: "Battery", UnitPrice: 3, AvailableStock: 9})

	l.ReconcileAfterSync([]entities.PartsLine{
		{PersistedID: 7, WarehouseItemID: 1, Quantity: 2, UnitPrice: 5, AvailableStock: 2},
		{PersistedID: 8, WarehouseItemID: 2, Description: "Battery", Quantity: 1, UnitPrice: 3, AvailableStock: 9},
	})

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "local-1", lines[0].LocalID)
	assert.Equal(t, 4, lines[0].AvailableStock)
	assert.Equal(t, added.LocalID, lines[1].LocalID)
	assert.Equal(t, int64(8), lines[1].PersistedID)
	assert.Equal(t, 13.0, l.PartsTotal())
}

func TestLedger_LoadKeepsStockAboveQuantity(t *testing.T) {
	l := newTestLedger()
	l.Load([]entities.PartsLine{{PersistedID: 3, WarehouseItemID: 1, Quantity: 5, UnitPrice: 1.5, AvailableStock: 0}})

	line, ok := l.Line("local-1")
	require.True(t, ok)
	assert.Equal(t, 5, line.AvailableStock)
	assert.Equal(t, 7.5, line.LineTotal)
}

func TestLedger_AttachPersisted(t *testing.T) {
	l := newTestLedger()
	l.Load([]entities.PartsLine{{PersistedID: 7, WarehouseItemID: 1, Quantity: 1, UnitPrice: 5, AvailableStock: 2}})
	battery, _ := l.AddOrIncrement(entities.WarehouseItem{ID: 2, UnitPrice: 3, AvailableStock: 9})
	port, _ := l.AddOrIncrement(entities.WarehouseItem{ID: 3, UnitPrice: 4, AvailableStock: 9})

	n := l.AttachPersisted([]entities.PartsLine{
		{PersistedID: 21, WarehouseItemID: 3},
		{PersistedID: 20, WarehouseItemID: 2, LocalID: battery.LocalID},
		{PersistedID: 0, WarehouseItemID: 1},
		{PersistedID: 99, WarehouseItemID: 1},
	})

	assert.Equal(t, 2, n)
	got, _ := l.Line(battery.LocalID)
	assert.Equal(t, int64(20), got.PersistedID)
	got, _ = l.Line(port.LocalID)
	assert.Equal(t, int64(21), got.PersistedID)
	got, _ = l.Line("local-1")
	assert.Equal(t, int64(7), got.PersistedID)
	assert.Empty(t, l.DiffForSync().ToInsert)
}
