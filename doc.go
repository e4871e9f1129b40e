// Package hrw implements rendezvous (highest random weight) hashing.
// It maps keys to members of a dynamic node set so that every holder of
// the same membership and hash provider agrees on the mapping, and a
// membership change only remaps keys whose winning node was affected.
package hrw
