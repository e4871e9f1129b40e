package hrw

import (
	"cmp"
	"fmt"
)

// Hasher is the pluggable scoring capability behind a Rendezvous. The
// default is hasher.XX64; package hrw/hasher ships several alternatives
// and callers may supply their own.
type Hasher interface {
	// Score returns the weight of node for key. It must be deterministic:
	// equal (key, node) inputs always produce equal scores within a
	// process, and for providers intended to coordinate placement across
	// processes, across them too.
	Score(key, node []byte) uint64
}

// appendOrdered appends a stable byte form of v to buf: strings verbatim,
// other ordered primitives via their fmt representation. Equal values
// always encode to equal bytes, so provider scores are reproducible.
func appendOrdered[T cmp.Ordered](buf []byte, v T) []byte {
	if s, ok := any(v).(string); ok {
		return append(buf, s...)
	}
	return fmt.Append(buf, v)
}
