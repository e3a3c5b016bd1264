package kv

import (
	"testing"

	"github.com/hunkymanie/shoply/internal/database"
)

func setupStores(t *testing.T) []Store {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return []Store{NewSQLiteStore(db), NewMemoryStore()}
}

func TestSetGet(t *testing.T) {
	for _, s := range setupStores(t) {
		if err := s.Set("shoply_users", `[]`); err != nil {
			t.Fatalf("set: %v", err)
		}
		v, ok, err := s.Get("shoply_users")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !ok {
			t.Fatal("expected key to be present")
		}
		if v != `[]` {
			t.Errorf("value = %q, want %q", v, `[]`)
		}
	}
}

func TestGetAbsent(t *testing.T) {
	for _, s := range setupStores(t) {
		_, ok, err := s.Get("missing")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if ok {
			t.Error("expected absent key")
		}
	}
}

func TestSetReplaces(t *testing.T) {
	for _, s := range setupStores(t) {
		s.Set("k", "one")
		if err := s.Set("k", "two"); err != nil {
			t.Fatalf("set: %v", err)
		}
		v, _, _ := s.Get("k")
		if v != "two" {
			t.Errorf("value = %q, want %q", v, "two")
		}
	}
}

func TestDelete(t *testing.T) {
	for _, s := range setupStores(t) {
		s.Set("k", "v")
		if err := s.Delete("k"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		_, ok, _ := s.Get("k")
		if ok {
			t.Error("expected key to be gone")
		}
		// Deleting an absent key is not an error
		if err := s.Delete("k"); err != nil {
			t.Errorf("delete absent: %v", err)
		}
	}
}

func TestKeysPrefix(t *testing.T) {
	for _, s := range setupStores(t) {
		s.Set("verification_a@example.com", "t1")
		s.Set("verification_b@example.com", "t2")
		s.Set("reset_a@example.com", "t3")

		keys, err := s.Keys("verification_")
		if err != nil {
			t.Fatalf("keys: %v", err)
		}
		if len(keys) != 2 {
			t.Fatalf("len(keys) = %d, want 2", len(keys))
		}
		if keys[0] != "verification_a@example.com" || keys[1] != "verification_b@example.com" {
			t.Errorf("keys = %v", keys)
		}
	}
}
