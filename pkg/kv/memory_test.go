package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.Set(ctx, "rec", record{Name: "a", Count: 3}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got record
	if err := s.Get(ctx, "rec", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "a" || got.Count != 3 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	s := NewMemoryStore()

	var dest string
	err := s.Get(context.Background(), "missing", &dest)
	if !errors.Is(err, ErrKeyMiss) {
		t.Fatalf("expected ErrKeyMiss, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", s.Len())
	}
}
