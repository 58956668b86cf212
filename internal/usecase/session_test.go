package usecase

import (
	"context"
	"testing"
	"time"
)

func TestSessionStore_Evict(t *testing.T) {
	st := NewSessionStore()
	now := time.Now()

	stale := newOrderSession("stale", testRC, NewPartsSearch(nil, 0, 0))
	stale.touch(now.Add(-3 * time.Hour))
	fresh := newOrderSession("fresh", testRC, NewPartsSearch(nil, 0, 0))
	fresh.touch(now.Add(-10 * time.Minute))
	st.Put(stale)
	st.Put(fresh)

	evicted := st.Evict(2*time.Hour, now)
	if len(evicted) != 1 || evicted[0] != "stale" {
		t.Fatalf("expected only the stale session evicted, got %v", evicted)
	}
	if _, ok := st.Get("stale"); ok {
		t.Fatalf("expected stale session gone")
	}
	if _, ok := st.Get("fresh"); !ok {
		t.Fatalf("expected fresh session kept")
	}
}

func TestSessionStore_GetMarksSeen(t *testing.T) {
	st := NewSessionStore()
	s := newOrderSession("s-1", testRC, NewPartsSearch(nil, 0, 0))
	s.touch(time.Now().Add(-3 * time.Hour))
	st.Put(s)

	if _, ok := st.Get("s-1"); !ok {
		t.Fatalf("expected session")
	}
	if evicted := st.Evict(time.Hour, time.Now()); len(evicted) != 0 {
		t.Fatalf("expected a looked-up session to survive, got %v", evicted)
	}
}

func TestSessionStore_Sweep(t *testing.T) {
	st := NewSessionStore()
	s := newOrderSession("s-1", testRC, NewPartsSearch(nil, 0, 0))
	s.touch(time.Now().Add(-time.Hour))
	st.Put(s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	evicted := make(chan []string, 1)
	go st.Sweep(ctx, 5*time.Millisecond, time.Minute, func(ids []string) {
		select {
		case evicted <- ids:
		default:
		}
	})

	select {
	case ids := <-evicted:
		if len(ids) != 1 || ids[0] != "s-1" {
			t.Fatalf("unexpected evicted ids %v", ids)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected the idle session to be swept")
	}
	if st.Len() != 0 {
		t.Fatalf("expected empty store, got %d", st.Len())
	}
}
