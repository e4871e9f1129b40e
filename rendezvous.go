package hrw

import (
	"cmp"
	"iter"
	"maps"

	"hrw/hasher"
)

// Rendezvous holds the current node membership and the hash provider used
// to score (key, node) pairs. K is the key type accepted by queries and N
// is the node identifier type; both are constrained to cmp.Ordered, which
// is exactly the set of types with a total order and a stable byte form.
//
// A Rendezvous is not synchronized internally. Callers that share one
// across goroutines must serialize mutations against queries themselves.
type Rendezvous[K, N cmp.Ordered] struct {
	hasher Hasher
	nodes  map[N]struct{}
}

// New creates an empty registry using the default provider (hasher.XX64).
func New[K, N cmp.Ordered]() *Rendezvous[K, N] {
	return FromNodesHasher[K, N](hasher.XX64{})
}

// FromNodes builds a registry from an initial collection of nodes using
// the default provider (hasher.XX64). Duplicate entries in the input
// collapse to a single membership.
func FromNodes[K, N cmp.Ordered](nodes ...N) *Rendezvous[K, N] {
	return FromNodesHasher[K, N](hasher.XX64{}, nodes...)
}

// FromNodesHasher builds a registry scored by a custom hash provider. The
// provider is fixed for the lifetime of the registry and must be
// deterministic for the placement guarantees to hold. Swapping providers
// changes absolute scores but not any behavior of the selection API.
func FromNodesHasher[K, N cmp.Ordered](h Hasher, nodes ...N) *Rendezvous[K, N] {
	r := &Rendezvous[K, N]{
		hasher: h,
		nodes:  make(map[N]struct{}, len(nodes)),
	}
	for _, n := range nodes {
		r.nodes[n] = struct{}{}
	}
	return r
}

// Add inserts a node. It returns true if the node was newly inserted and
// false if it was already a member.
func (r *Rendezvous[K, N]) Add(node N) bool {
	if _, exists := r.nodes[node]; exists {
		return false
	}
	r.nodes[node] = struct{}{}
	return true
}

// Remove deletes a node. It returns true if the node was a member and
// false if there was nothing to remove.
func (r *Rendezvous[K, N]) Remove(node N) bool {
	if _, exists := r.nodes[node]; !exists {
		return false
	}
	delete(r.nodes, node)
	return true
}

// Contains reports whether node is currently a member.
func (r *Rendezvous[K, N]) Contains(node N) bool {
	_, exists := r.nodes[node]
	return exists
}

// Len returns the number of member nodes.
func (r *Rendezvous[K, N]) Len() int {
	return len(r.nodes)
}

// IsEmpty reports whether the registry has no members.
func (r *Rendezvous[K, N]) IsEmpty() bool {
	return len(r.nodes) == 0
}

// Nodes returns an iterator over the current members in no particular
// order. Each call yields a fresh sequence. Mutating the registry while
// ranging over a sequence is undefined.
func (r *Rendezvous[K, N]) Nodes() iter.Seq[N] {
	return maps.Keys(r.nodes)
}

// Clone returns an independent registry with the same membership and the
// same provider. The two registries share no mutable state afterwards.
func (r *Rendezvous[K, N]) Clone() *Rendezvous[K, N] {
	return &Rendezvous[K, N]{
		hasher: r.hasher,
		nodes:  maps.Clone(r.nodes),
	}
}
