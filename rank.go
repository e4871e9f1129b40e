package hrw

import (
	"cmp"
	"iter"
	"slices"
)

// pair couples a node with its score for one key.
type pair[N cmp.Ordered] struct {
	node  N
	score uint64
}

// comparePairs orders by descending score, then ascending node. A score
// tie (provider collision) therefore always resolves to the node that
// sorts first under its natural order, and PickTop, PickTopN, and Rank
// agree on one effective ranking.
func comparePairs[N cmp.Ordered](a, b pair[N]) int {
	if c := cmp.Compare(b.score, a.score); c != 0 {
		return c
	}
	return cmp.Compare(a.node, b.node)
}

// PickTop returns the member with the highest score for key.
// Returns (node, true) if the registry has members, (zero, false) if it
// is empty. Repeated calls with the same key and unchanged membership
// return the same node.
func (r *Rendezvous[K, N]) PickTop(key K) (N, bool) {
	var (
		best  N
		top   uint64
		found bool
	)
	keyBytes := appendOrdered(nil, key)
	var buf []byte
	for node := range r.nodes {
		buf = appendOrdered(buf[:0], node)
		score := r.hasher.Score(keyBytes, buf)
		if !found || score > top || (score == top && node < best) {
			best, top, found = node, score, true
		}
	}
	return best, found
}

// PickTopN returns up to n members for key in descending score order.
// If n exceeds the membership size every member is returned ranked; if
// n is zero or negative the result is empty.
func (r *Rendezvous[K, N]) PickTopN(key K, n int) []N {
	if n <= 0 || len(r.nodes) == 0 {
		return nil
	}
	ranked := r.scoreAll(key)
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]N, n)
	for i := range out {
		out[i] = ranked[i].node
	}
	return out
}

// Rank returns every member paired with its score for key, highest score
// first. The scores are computed and sorted when Rank is called; the
// returned iterator replays that snapshot on every range, so membership
// changes made after the call do not show through. The first element is
// always the PickTop winner and the first n elements match PickTopN.
func (r *Rendezvous[K, N]) Rank(key K) iter.Seq2[N, uint64] {
	ranked := r.scoreAll(key)
	return func(yield func(N, uint64) bool) {
		for _, p := range ranked {
			if !yield(p.node, p.score) {
				return
			}
		}
	}
}

// scoreAll computes one score per member for key and sorts the result
// into the effective ranking. O(n) hashing plus the sort; nothing is
// cached across calls since every query carries its own key.
func (r *Rendezvous[K, N]) scoreAll(key K) []pair[N] {
	keyBytes := appendOrdered(nil, key)
	ranked := make([]pair[N], 0, len(r.nodes))
	var buf []byte
	for node := range r.nodes {
		buf = appendOrdered(buf[:0], node)
		ranked = append(ranked, pair[N]{
			node:  node,
			score: r.hasher.Score(keyBytes, buf),
		})
	}
	slices.SortFunc(ranked, comparePairs[N])
	return ranked
}
