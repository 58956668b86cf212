package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

var ErrSearchSuperseded = errors.New("parts search superseded by a newer one")

const (
	DefaultSearchDebounce = 300 * time.Millisecond
	DefaultSearchLimit    = 20
)

// PartsSearch runs the warehouse search of one order session.
//
// Every call takes a ticket from a monotonically increasing counter. After the
// debounce the call only reaches the repository if no newer call was issued, and
// its results only replace the current list if that is still true when they
// arrive. Superseded calls return ErrSearchSuperseded.
type PartsSearch struct {
	repo     interfaces.IWarehouseRepository
	debounce time.Duration
	limit    int
	after    func(time.Duration) <-chan time.Time

	seq atomic.Uint64

	mu      sync.Mutex
	query   string
	results []entities.WarehouseItem
}

func NewPartsSearch(repo interfaces.IWarehouseRepository, debounce time.Duration, limit int) *PartsSearch {
	if debounce < 0 {
		debounce = 0
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &PartsSearch{repo: repo, debounce: debounce, limit: limit, after: time.After}
}

func (s *PartsSearch) Search(ctx context.Context, rc entities.RequestContext, query string) ([]entities.WarehouseItem, error) {
	ticket := s.seq.Add(1)

	if s.debounce > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.after(s.debounce):
		}
	}
	if s.seq.Load() != ticket {
		return nil, ErrSearchSuperseded
	}

	query = strings.TrimSpace(query)
	var items []entities.WarehouseItem
	if query != "" {
		var err error
		items, err = s.repo.Search(ctx, rc, query, s.limit)
		if err != nil {
			return nil, fmt.Errorf("search warehouse %q: %w", query, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq.Load() != ticket {
		return nil, ErrSearchSuperseded
	}
	s.query = query
	s.results = items
	return cloneItems(items), nil
}

// Results returns the list assigned by the latest search that completed.
func (s *PartsSearch) Results() (string, []entities.WarehouseItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, cloneItems(s.results)
}

// Candidate looks an item up in the current results.
func (s *PartsSearch) Candidate(itemID int64) (entities.WarehouseItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.results {
		if it.ID == itemID {
			return it, true
		}
	}
	return entities.WarehouseItem{}, false
}

func cloneItems(items []entities.WarehouseItem) []entities.WarehouseItem {
	if items == nil {
		return nil
	}
	out := make([]entities.WarehouseItem, len(items))
	copy(out, items)
	return out
}
