package hrw

import (
	"fmt"
	"testing"
)

// TestRendezvous_Property_Determinism tests that independently built
// registries with the same membership agree on every pick.
func TestRendezvous_Property_Determinism(t *testing.T) {
	r1 := FromNodes[string]("n1", "n2", "n3")
	r2 := FromNodes[string]("n3", "n1", "n2")

	testKeys := []string{"key1", "key2", "key3", "user:123", "test-key", "another-key"}

	for _, key := range testKeys {
		pick1, ok1 := r1.PickTop(key)
		pick2, ok2 := r2.PickTop(key)

		if ok1 != ok2 {
			t.Errorf("Existence mismatch for key %s: r1=%v, r2=%v", key, ok1, ok2)
		}
		if pick1 != pick2 {
			t.Errorf("Pick mismatch for key %s: r1=%s, r2=%s", key, pick1, pick2)
		}
	}
}

// TestRendezvous_Property_MinimalDisruptionOnRemoval tests that removing
// a node only remaps keys that node was winning.
func TestRendezvous_Property_MinimalDisruptionOnRemoval(t *testing.T) {
	r := FromNodes[string]("A", "B", "C", "D")

	for i := 0; i < 200; i++ {
		key := fmt.Sprintf("key-%d", i)
		before, ok := r.PickTop(key)
		if !ok {
			t.Fatalf("Expected a pick for key %s", key)
		}

		// Remove some node other than the winner.
		var loser string
		for n := range r.Nodes() {
			if n != before {
				loser = n
				break
			}
		}

		trimmed := r.Clone()
		trimmed.Remove(loser)
		after, ok := trimmed.PickTop(key)
		if !ok {
			t.Fatalf("Expected a pick for key %s after removal", key)
		}
		if after != before {
			t.Errorf("Removing loser %s moved key %s from %s to %s", loser, key, before, after)
		}
	}
}

// TestRendezvous_Property_MinimalDisruptionOnAddition tests that adding a
// node either takes a key or leaves its previous winner in place.
func TestRendezvous_Property_MinimalDisruptionOnAddition(t *testing.T) {
	r := FromNodes[string]("A", "B")

	for i := 0; i < 200; i++ {
		key := fmt.Sprintf("key-%d", i)
		before, _ := r.PickTop(key)

		grown := r.Clone()
		grown.Add("C")
		after, _ := grown.PickTop(key)

		if after != before && after != "C" {
			t.Errorf("Adding C moved key %s from %s to %s", key, before, after)
		}
	}
}

// TestRendezvous_Property_StabilityOnMembershipChange tests that a single
// node change remaps roughly its fair share of the key space and no more.
func TestRendezvous_Property_StabilityOnMembershipChange(t *testing.T) {
	r := FromNodes[int]("a", "b", "c", "d")

	owners := make(map[int]string, 1000)
	for i := 0; i < 1000; i++ {
		node, ok := r.PickTop(i)
		if !ok {
			t.Fatalf("Expected a pick for key %d", i)
		}
		owners[i] = node
	}

	// Growing 4 -> 5 nodes should move about a fifth of the keys.
	r.Add("e")
	moved := 0
	for i := 0; i < 1000; i++ {
		node, _ := r.PickTop(i)
		if owners[i] != node {
			moved++
		}
		owners[i] = node
	}
	if moved < 100 || moved > 300 {
		t.Errorf("Adding one node to four moved %d of 1000 keys, want 100-300", moved)
	}

	// Shrinking 5 -> 4 likewise.
	r.Remove("c")
	moved = 0
	for i := 0; i < 1000; i++ {
		node, _ := r.PickTop(i)
		if owners[i] != node {
			moved++
		}
	}
	if moved < 100 || moved > 300 {
		t.Errorf("Removing one node of five moved %d of 1000 keys, want 100-300", moved)
	}
}

// TestRendezvous_Property_RankIsPermutation tests that every ranking is a
// permutation of the current membership.
func TestRendezvous_Property_RankIsPermutation(t *testing.T) {
	r := FromNodes[string]("n1", "n2", "n3", "n4", "n5")

	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		seen := make(map[string]bool)
		for node := range r.Rank(key) {
			if seen[node] {
				t.Fatalf("Node %s appeared twice in Rank(%s)", node, key)
			}
			if !r.Contains(node) {
				t.Fatalf("Rank(%s) yielded non-member %s", key, node)
			}
			seen[node] = true
		}
		if len(seen) != r.Len() {
			t.Errorf("Rank(%s) yielded %d nodes, want %d", key, len(seen), r.Len())
		}
	}
}
