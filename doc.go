// Package sucds provides succinct data structures: compact, array-like
// representations that support random access, rank, and select queries in
// close to the information-theoretic minimum space, without ever
// decompressing.
//
// The package is organized as:
//   - bitvector: plain and indexed bit vectors (Data, Builder, NoIndex,
//     the generic Vector[I] wrapper, and the Index trait surface).
//   - rank9sel: Vigna's Rank9 rank index with hinted O(log u) select.
//   - darray: the dense array select index of Okanohara and Sadakane.
//   - intvector: CompactVector, a fixed-width packed integer array.
//   - dacsbyte: DacsByte, a byte-level directly addressable code.
//
// All structures here are built once, via a Builder or a from-slice
// constructor, then frozen into an immutable value safe for concurrent
// read-only access. There are no background goroutines; every query is a
// direct, synchronous computation over the frozen storage.
package sucds
