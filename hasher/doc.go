// Package hasher provides ready-made score providers for rendezvous
// hashing. XX64 is the default; all providers except Seeded produce the
// same scores in every process, which lets independent parties holding
// the same membership agree on placement.
package hasher
