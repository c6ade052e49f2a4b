package idgen

import "testing"

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if id == "" {
			t.Fatal("New returned empty id")
		}
		if seen[id] {
			t.Fatalf("New returned duplicate id %s", id)
		}
		seen[id] = true
	}
}
