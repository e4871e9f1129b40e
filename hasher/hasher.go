package hasher

import (
	"encoding/binary"
	"hash/fnv"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"lukechampine.com/blake3"
)

// sep separates the key bytes from the node bytes inside the hashed
// message, so adjacent fields cannot alias ("ab"/"c" vs "a"/"bc").
var sep = []byte{0}

// XX64 scores with 64-bit xxHash. It is the default provider: fast,
// unseeded, and stable across processes and architectures.
type XX64 struct{}

// Score implements the provider contract using xxHash64.
func (XX64) Score(key, node []byte) uint64 {
	var d xxhash.Digest
	d.Reset()
	d.Write(key)
	d.Write(sep)
	d.Write(node)
	return d.Sum64()
}

// Murmur3 scores with 64 bits of MurmurHash3. Stable across processes.
type Murmur3 struct{}

// Score implements the provider contract using MurmurHash3.
func (Murmur3) Score(key, node []byte) uint64 {
	h := murmur3.New64()
	h.Write(key)
	h.Write(sep)
	h.Write(node)
	return h.Sum64()
}

// XXH3 scores with the XXH3 64-bit hash. Stable across processes.
type XXH3 struct{}

// Score implements the provider contract using XXH3.
func (XXH3) Score(key, node []byte) uint64 {
	h := xxh3.New()
	h.Write(key)
	h.Write(sep)
	h.Write(node)
	return h.Sum64()
}

// Blake3 scores with the first 64 bits of a BLAKE3 digest. Slower than
// the non-cryptographic providers but keeps scores unpredictable to
// parties that can choose keys.
type Blake3 struct{}

// Score implements the provider contract using BLAKE3.
func (Blake3) Score(key, node []byte) uint64 {
	h := blake3.New(8, nil)
	h.Write(key)
	h.Write(sep)
	h.Write(node)
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

// FNV64 scores with 64-bit FNV-1a. Stable across processes.
type FNV64 struct{}

// Score implements the provider contract using FNV-1a.
func (FNV64) Score(key, node []byte) uint64 {
	h := fnv.New64a()
	h.Write(key)
	h.Write(sep)
	h.Write(node)
	return h.Sum64()
}

// Seeded scores with hash/maphash under a process-local random seed.
// Two Seeded values made by NewSeeded disagree with each other, so it
// suits single-process use only; pick an unseeded provider when
// independent processes must agree on placement.
type Seeded struct {
	seed maphash.Seed
}

// NewSeeded returns a Seeded provider with a freshly drawn seed. The
// zero Seeded value is not usable.
func NewSeeded() Seeded {
	return Seeded{seed: maphash.MakeSeed()}
}

// Score implements the provider contract using maphash with the
// provider's seed.
func (s Seeded) Score(key, node []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(s.seed)
	h.Write(key)
	h.WriteByte(0)
	h.Write(node)
	return h.Sum64()
}
