// Package darray implements the dense array select index of Okanohara and
// Sadakane, with optional Rank9 and zero-polarity sidecars for rank and
// select0.
package darray

import (
	"math/bits"

	"github.com/triblespace/sucds/bitvector"
	"github.com/triblespace/sucds/rank9sel"
)

// Polarity selects whether a singleIndex tracks set or unset bits. Ones
// and Zeros stand in for the reference structure's const-generic boolean
// parameter, which Go's type parameters cannot express directly.
type Polarity interface {
	ones() bool
}

// Ones configures a singleIndex to track set bits.
type Ones struct{}

func (Ones) ones() bool { return true }

// Zeros configures a singleIndex to track unset bits.
type Zeros struct{}

func (Zeros) ones() bool { return false }

const (
	superBlockSize  = 1 << 16 // L: target positions per super-block
	subSamplePeriod = 1 << 6  // Ls: stride for subblock sampling
	spanThreshold   = int64(1) << 32 // T = L*L
)

// singleIndex is the single-polarity dense select engine. A super-block
// covering fewer than spanThreshold universe bits ("short") stores its
// first position plus periodic subblock offsets; one spanning spanThreshold
// or more ("long") stores every position verbatim in the overflow list.
type singleIndex[P Polarity] struct {
	blockInventory []int64
	// subblockInventory holds one slice per super-block, aligned by index
	// with blockInventory; a long super-block's entry is nil since it is
	// resolved through overflow instead. Kept per-block rather than as one
	// flat array because a "long" super-block contributes zero samples,
	// which would otherwise desynchronise a fixed stride offset.
	subblockInventory [][]uint32
	overflow          []int
	numPositions      int
}

func wordForPolarity(words []bitvector.Word, idx int, ones bool, u int) bitvector.Word {
	var w bitvector.Word
	if idx < len(words) {
		w = words[idx]
	}
	if !ones {
		w = ^w
		if idx == len(words)-1 {
			if rem := u % bitvector.WordBits; rem != 0 {
				mask := (bitvector.Word(1) << uint(rem)) - 1
				w &= mask
			}
		}
	}
	return w
}

// flushBucket appends one super-block's worth of positions to the
// inventories, choosing the short (dense-offset) or long (overflow)
// encoding by comparing the bucket's span against spanThreshold. It is
// independent of how positions was gathered, which keeps it directly
// testable against a synthetic bucket without needing a universe of
// spanThreshold bits.
func (idx *singleIndex[P]) flushBucket(positions []int) {
	if len(positions) == 0 {
		return
	}
	first := positions[0]
	last := positions[len(positions)-1]
	span := int64(last-first) + 1
	if span < spanThreshold {
		idx.blockInventory = append(idx.blockInventory, -(int64(first) + 1))
		sub := make([]uint32, 0, len(positions)/subSamplePeriod+1)
		for i := 0; i < len(positions); i += subSamplePeriod {
			sub = append(sub, uint32(positions[i]-first))
		}
		idx.subblockInventory = append(idx.subblockInventory, sub)
	} else {
		idx.blockInventory = append(idx.blockInventory, int64(len(idx.overflow)))
		idx.subblockInventory = append(idx.subblockInventory, nil)
		idx.overflow = append(idx.overflow, positions...)
	}
}

func (idx *singleIndex[P]) build(d *bitvector.Data) {
	var p P
	ones := p.ones()
	words := d.Words()
	u := d.Len()

	var positions []int
	for wordIdx := range words {
		target := wordForPolarity(words, wordIdx, ones, u)
		for target != 0 {
			bitIdx := bits.TrailingZeros64(target)
			pos := wordIdx*bitvector.WordBits + bitIdx
			positions = append(positions, pos)
			idx.numPositions++
			if len(positions) == superBlockSize {
				idx.flushBucket(positions)
				positions = positions[:0]
			}
			target &= target - 1
		}
	}
	idx.flushBucket(positions)
}

func (idx *singleIndex[P]) selectAt(d *bitvector.Data, k int) (int, bool) {
	if k < 0 || k >= idx.numPositions {
		return 0, false
	}
	q, r := k/superBlockSize, k%superBlockSize
	e := idx.blockInventory[q]
	if e >= 0 {
		return idx.overflow[int(e)+r], true
	}
	first := int(-e) - 1
	if r == 0 {
		return first, true
	}
	j := r / subSamplePeriod
	start := first + int(idx.subblockInventory[q][j])
	rprime := r % subSamplePeriod

	var p P
	ones := p.ones()
	return idx.scanForward(d, start, rprime, ones), true
}

func (idx *singleIndex[P]) scanForward(d *bitvector.Data, start, rprime int, ones bool) int {
	if rprime == 0 {
		return start
	}
	words := d.Words()
	u := d.Len()
	wordIdx := start / bitvector.WordBits
	bitInWord := start % bitvector.WordBits

	w := wordForPolarity(words, wordIdx, ones, u)
	w &= ^((bitvector.Word(1) << uint(bitInWord)) - 1)

	remaining := rprime
	for {
		cnt := bitvector.PopCount(w)
		if remaining < cnt {
			return wordIdx*bitvector.WordBits + bitvector.SelectInWord(w, remaining)
		}
		remaining -= cnt
		wordIdx++
		w = wordForPolarity(words, wordIdx, ones, u)
	}
}

// Options configures which sidecars a full, combined Index attaches beyond
// its mandatory select1 engine.
type Options struct {
	// Rank attaches a Rank9 sidecar, enabling Rank1/Rank0.
	Rank bool
	// Select0 attaches a zero-polarity dense index, enabling Select0.
	Select0 bool
}

// Index bundles a select1 dense index with the optional rank and select0
// sidecars the reference DArray struct carries, matching its enable_rank /
// enable_select0 builder-chain pattern.
type Index struct {
	s1   singleIndex[Ones]
	s0   *singleIndex[Zeros]
	rank *rank9sel.Index
	opts Options
}

// New returns an unbuilt Index configured per opts.
func New(opts Options) *Index { return &Index{opts: opts} }

// Build computes the select1 engine and, if configured, the rank9 and
// select0 sidecars.
func (idx *Index) Build(d *bitvector.Data) error {
	idx.s1.build(d)
	if idx.opts.Select0 {
		idx.s0 = &singleIndex[Zeros]{}
		idx.s0.build(d)
	}
	if idx.opts.Rank {
		idx.rank = rank9sel.New(rank9sel.Options{})
		if err := idx.rank.Build(d); err != nil {
			return err
		}
	}
	return nil
}

// NumOnes returns the number of set bits.
func (idx *Index) NumOnes(d *bitvector.Data) int { return idx.s1.numPositions }

// Rank1 requires the structure to have been built with Options.Rank; it
// panics otherwise, mirroring the reference's unconditional .expect() on
// an absent sidecar, since calling it without the sidecar is a precondition
// violation rather than a recoverable error.
func (idx *Index) Rank1(d *bitvector.Data, pos int) (int, bool) {
	if idx.rank == nil {
		panic("darray: rank1 requires an Index built with Options.Rank")
	}
	return idx.rank.Rank1(d, pos)
}

// Select1 returns the position of the (k+1)-th set bit in O(1) expected
// time.
func (idx *Index) Select1(d *bitvector.Data, k int) (int, bool) {
	return idx.s1.selectAt(d, k)
}

// Select0 requires the structure to have been built with
// Options.Select0; it panics otherwise, for the same reason as Rank1.
func (idx *Index) Select0(d *bitvector.Data, k int) (int, bool) {
	if idx.s0 == nil {
		panic("darray: select0 requires an Index built with Options.Select0")
	}
	return idx.s0.selectAt(d, k)
}

// sizeInBytes reports a tight accounting of the single-polarity engine's
// own backing storage: the block inventory, the per-block subblock offset
// arrays, and the overflow position list.
func (idx *singleIndex[P]) sizeInBytes() int {
	n := 8 * len(idx.blockInventory)
	for _, sub := range idx.subblockInventory {
		n += 4 * len(sub)
	}
	n += 8 * len(idx.overflow)
	return n
}

// SizeInBytes reports a tight accounting of the index's own backing
// storage, not counting the bit vector it indexes: the select1 engine plus
// whichever sidecars were configured at Build time.
func (idx *Index) SizeInBytes() int {
	n := idx.s1.sizeInBytes()
	if idx.s0 != nil {
		n += idx.s0.sizeInBytes()
	}
	if idx.rank != nil {
		n += idx.rank.SizeInBytes()
	}
	return n
}
