// Package ledger tracks the parts usage lines of one order while it is edited and
// works out what has to be sent to the repository on save.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrLineNotFound        = errors.New("parts line not found")
	ErrOutOfStock          = errors.New("warehouse item out of stock")
	ErrRemovalNotConfirmed = errors.New("removal of a persisted parts line not confirmed")
	ErrNoRemoteDelete      = errors.New("remote delete not configured")
)

// Diff is the sync plan of the ledger. There is no delete bucket: persisted lines
// are deleted remotely at Remove time.
type Diff struct {
	ToInsert []entities.PartsLine
	ToUpdate []entities.PartsLine
}

func (d Diff) Empty() bool {
	return len(d.ToInsert) == 0 && len(d.ToUpdate) == 0
}

// Confirm asks the user whether a persisted line may be deleted.
type Confirm func() bool

// RemoteDelete removes a persisted line from the repository.
type RemoteDelete func(ctx context.Context, persistedID int64) error

// Ledger is the ordered, in-memory set of parts lines of an order.
// It is not safe for concurrent use.
type Ledger struct {
	lines []entities.PartsLine
	newID func() string
}

func New() *Ledger {
	return &Ledger{newID: uuid.NewString}
}

// Load replaces every line with the given persisted snapshot.
func (l *Ledger) Load(lines []entities.PartsLine) {
	l.lines = make([]entities.PartsLine, 0, len(lines))
	for _, line := range lines {
		line.LocalID = l.newID()
		l.lines = append(l.lines, normalize(line))
	}
}

func (l *Ledger) Lines() []entities.PartsLine {
	out := make([]entities.PartsLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Line(localID string) (entities.PartsLine, bool) {
	if i := l.indexOf(localID); i >= 0 {
		return l.lines[i], true
	}
	return entities.PartsLine{}, false
}

func (l *Ledger) PartsTotal() float64 {
	totals := make([]float64, 0, len(l.lines))
	for _, line := range l.lines {
		totals = append(totals, line.LineTotal)
	}
	return pricing.Sum(totals...)
}

// AddOrIncrement accepts a search result. An existing line for the same warehouse
// item grows by one, up to the candidate's stock; otherwise a new line with
// quantity 1 is appended.
func (l *Ledger) AddOrIncrement(item entities.WarehouseItem) (entities.PartsLine, error) {
	if item.AvailableStock < 1 {
		return entities.PartsLine{}, ErrOutOfStock
	}

	for i := range l.lines {
		if l.lines[i].WarehouseItemID != item.ID {
			continue
		}
		line := &l.lines[i]
		line.AvailableStock = item.AvailableStock
		line.Quantity = min(line.Quantity+1, item.AvailableStock)
		line.LineTotal = pricing.LineTotal(line.Quantity, line.UnitPrice)
		return *line, nil
	}

	line := entities.PartsLine{
		LocalID:         l.newID(),
		WarehouseItemID: item.ID,
		Description:     item.Description,
		Quantity:        1,
		UnitPrice:       pricing.Round2(item.UnitPrice),
		AvailableStock:  item.AvailableStock,
	}
	line.LineTotal = pricing.LineTotal(line.Quantity, line.UnitPrice)
	l.lines = append(l.lines, line)
	return line, nil
}

// SetQuantity clamps the requested quantity to [1, availableStock].
func (l *Ledger) SetQuantity(localID string, requested int) (entities.PartsLine, error) {
	i := l.indexOf(localID)
	if i < 0 {
		return entities.PartsLine{}, ErrLineNotFound
	}
	line := &l.lines[i]
	line.Quantity = clamp(requested, 1, max(line.AvailableStock, 1))
	line.LineTotal = pricing.LineTotal(line.Quantity, line.UnitPrice)
	return *line, nil
}

// Remove drops a line. A line that was never persisted goes away locally. A
// persisted one needs confirm to return true and del to succeed first; when either
// does not happen the line stays where it is.
func (l *Ledger) Remove(ctx context.Context, localID string, confirm Confirm, del RemoteDelete) error {
	i := l.indexOf(localID)
	if i < 0 {
		return ErrLineNotFound
	}
	line := l.lines[i]
	if line.IsPersisted() {
		if confirm == nil || !confirm() {
			return ErrRemovalNotConfirmed
		}
		if del == nil {
			return ErrNoRemoteDelete
		}
		if err := del(ctx, line.PersistedID); err != nil {
			return fmt.Errorf("delete parts line %d: %w", line.PersistedID, err)
		}
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	return nil
}

func (l *Ledger) DiffForSync() Diff {
	var d Diff
	for _, line := range l.lines {
		if line.IsPersisted() {
			d.ToUpdate = append(d.ToUpdate, line)
		} else {
			d.ToInsert = append(d.ToInsert, line)
		}
	}
	return d
}

// ReconcileAfterSync reloads the ledger from the authoritative remote list.
// Local ids survive when a remote line matches an existing one, by persisted id
// first and then, for freshly inserted lines, by warehouse item.
func (l *Ledger) ReconcileAfterSync(remote []entities.PartsLine) {
	used := make(map[string]bool, len(l.lines))
	next := make([]entities.PartsLine, 0, len(remote))
	for _, r := range remote {
		if local, ok := l.match(r, used); ok {
			used[local.LocalID] = true
			r.LocalID = local.LocalID
			r.AvailableStock = max(r.AvailableStock, local.AvailableStock)
		} else {
			r.LocalID = l.newID()
		}
		next = append(next, normalize(r))
	}
	l.lines = next
}

// AttachPersisted records the ids the repository assigned to freshly inserted
// lines, so a later save updates them instead of inserting them again. Lines are
// matched by local id when the repository echoes it, then by warehouse item.
// It returns how many local lines got an id.
func (l *Ledger) AttachPersisted(inserted []entities.PartsLine) int {
	attached := 0
	for _, r := range inserted {
		if !r.IsPersisted() {
			continue
		}
		i := l.unpersistedIndex(func(line entities.PartsLine) bool { return r.LocalID != "" && line.LocalID == r.LocalID })
		if i < 0 {
			i = l.unpersistedIndex(func(line entities.PartsLine) bool { return line.WarehouseItemID == r.WarehouseItemID })
		}
		if i < 0 {
			continue
		}
		l.lines[i].PersistedID = r.PersistedID
		attached++
	}
	return attached
}

func (l *Ledger) unpersistedIndex(pred func(entities.PartsLine) bool) int {
	for i, line := range l.lines {
		if !line.IsPersisted() && pred(line) {
			return i
		}
	}
	return -1
}

func (l *Ledger) match(r entities.PartsLine, used map[string]bool) (entities.PartsLine, bool) {
	for _, line := range l.lines {
		if !used[line.LocalID] && line.IsPersisted() && line.PersistedID == r.PersistedID {
			return line, true
		}
	}
	for _, line := range l.lines {
		if !used[line.LocalID] && !line.IsPersisted() && line.WarehouseItemID == r.WarehouseItemID {
			return line, true
		}
	}
	return entities.PartsLine{}, false
}

func (l *Ledger) indexOf(localID string) int {
	for i, line := range l.lines {
		if line.LocalID == localID {
			return i
		}
	}
	return -1
}

// normalize keeps a persisted line editable: its own quantity is already
// reserved, so the stock snapshot is never below it.
func normalize(line entities.PartsLine) entities.PartsLine {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if line.AvailableStock < line.Quantity {
		line.AvailableStock = line.Quantity
	}
	line.UnitPrice = pricing.Round2(line.UnitPrice)
	line.LineTotal = pricing.LineTotal(line.Quantity, line.UnitPrice)
	return line
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
