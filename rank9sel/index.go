// Package rank9sel implements Vigna's Rank9 rank index with hinted
// selection, giving O(1) rank and O(log u) select over a bitvector.Data;
// enabled hints narrow the range of select's super-block binary search.
package rank9sel

import (
	"github.com/triblespace/sucds/bitvector"
)

// superBlockBits is the span of one super-block: 8 consecutive 64-bit
// sub-blocks.
const superBlockBits = 512

// hintSampleLog2 is log2 of the stride, in rank units, between consecutive
// select hint samples. Kept at the value the structure this module is modeled on
// uses; a different stride would need to be documented here if it were
// ever changed.
const hintSampleLog2 = 13
const hintStride = 1 << hintSampleLog2

// Options configures which queries an Index supports beyond rank, which is
// always built.
type Options struct {
	Select1 bool
	Select0 bool
}

// Index is a Rank9 index with optional hinted select1/select0 support. It
// satisfies bitvector.Index.
type Index struct {
	pairs        []uint64 // 2 uint64 per super-block, plus one trailing total
	select1Hints []uint32
	select0Hints []uint32
	numOnes      int
	opts         Options
}

// New returns an unbuilt Index configured per opts.
func New(opts Options) *Index { return &Index{opts: opts} }

func numSuperBlocks(pairs []uint64) int { return len(pairs)/2 - 1 }

// Build computes the two-level block structure and, if configured, the
// select hint arrays.
func (idx *Index) Build(d *bitvector.Data) error {
	words := d.Words()
	u := d.Len()
	b := (u + superBlockBits - 1) / superBlockBits
	pairs := make([]uint64, 2*(b+1))

	var nextRank uint64
	for blk := 0; blk < b; blk++ {
		pairs[2*blk] = nextRank
		base := blk * 8
		var cum uint64
		var packed uint64
		for s := 1; s < 8; s++ {
			wordIdx := base + (s - 1)
			if wordIdx < len(words) {
				cum += uint64(bitvector.PopCount(words[wordIdx]))
			}
			packed |= cum << uint((s-1)*9)
		}
		var last uint64
		if base+7 < len(words) {
			last = uint64(bitvector.PopCount(words[base+7]))
		}
		pairs[2*blk+1] = packed
		nextRank += cum + last
	}
	pairs[2*b] = nextRank

	idx.pairs = pairs
	idx.numOnes = int(nextRank)
	if idx.opts.Select1 {
		idx.buildSelect1Hints()
	}
	if idx.opts.Select0 {
		idx.buildSelect0Hints(u)
	}
	return nil
}

func (idx *Index) buildSelect1Hints() {
	b := numSuperBlocks(idx.pairs)
	var hints []uint32
	for k := 0; k*hintStride < idx.numOnes; k++ {
		target := k * hintStride
		hints = append(hints, uint32(idx.locateSuperBlock1(target, 0, b)))
	}
	hints = append(hints, uint32(b))
	idx.select1Hints = hints
}

func (idx *Index) buildSelect0Hints(u int) {
	b := numSuperBlocks(idx.pairs)
	numZeros := u - idx.numOnes
	var hints []uint32
	for k := 0; k*hintStride < numZeros; k++ {
		target := k * hintStride
		hints = append(hints, uint32(idx.locateSuperBlock0(target, 0, b)))
	}
	hints = append(hints, uint32(b))
	idx.select0Hints = hints
}

// subBlockRank returns the cumulative popcount of sub-blocks 0..s-1 within
// super-block blk, relative to the super-block's own start.
func (idx *Index) subBlockRank(blk, s int) int {
	if s == 0 {
		return 0
	}
	field := idx.pairs[2*blk+1]
	return int((field >> uint((s-1)*9)) & 0x1ff)
}

// locateSuperBlock1 finds the largest b in [lo, hi) with pairs[2b] <= k.
func (idx *Index) locateSuperBlock1(k, lo, hi int) int {
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if int(idx.pairs[2*mid]) <= k {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// locateSuperBlock0 finds the largest b in [lo, hi) with cumulative zero
// rank (512*b - pairs[2b]) <= k.
func (idx *Index) locateSuperBlock0(k, lo, hi int) int {
	for lo+1 < hi {
		mid := (lo + hi) / 2
		cumZeros := superBlockBits*mid - int(idx.pairs[2*mid])
		if cumZeros <= k {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// NumOnes returns the precomputed total set-bit count.
func (idx *Index) NumOnes(d *bitvector.Data) int { return idx.numOnes }

// Rank1 adds the super-block total, the sub-block field, and a partial
// popcount of the current word.
func (idx *Index) Rank1(d *bitvector.Data, pos int) (int, bool) {
	if pos < 0 || pos > d.Len() {
		return 0, false
	}
	blk := pos / superBlockBits
	s := (pos % superBlockBits) / bitvector.WordBits
	off := pos % bitvector.WordBits

	r := int(idx.pairs[2*blk]) + idx.subBlockRank(blk, s)
	if off != 0 {
		words := d.Words()
		wordIdx := pos / bitvector.WordBits
		mask := (bitvector.Word(1) << uint(off)) - 1
		r += bitvector.PopCount(words[wordIdx] & mask)
	}
	return r, true
}

// Select1 returns the position of the (k+1)-th set bit, using hints to
// narrow the super-block binary search when enabled.
func (idx *Index) Select1(d *bitvector.Data, k int) (int, bool) {
	if k < 0 || k >= idx.numOnes {
		return 0, false
	}
	b := numSuperBlocks(idx.pairs)
	lo, hi := 0, b
	if idx.select1Hints != nil {
		h := k >> hintSampleLog2
		lo = int(idx.select1Hints[h])
		hi = int(idx.select1Hints[h+1]) + 1
		if hi > b {
			hi = b
		}
	}
	blk := idx.locateSuperBlock1(k, lo, hi)
	rem := k - int(idx.pairs[2*blk])

	field := idx.pairs[2*blk+1]
	s, subStart := 0, 0
	for ss := 1; ss < 8; ss++ {
		fieldVal := int((field >> uint((ss-1)*9)) & 0x1ff)
		if fieldVal > rem {
			break
		}
		s, subStart = ss, fieldVal
	}
	wordIdx := blk*8 + s
	words := d.Words()
	return wordIdx*bitvector.WordBits + bitvector.SelectInWord(words[wordIdx], rem-subStart), true
}

// Select0 mirrors Select1 over the complement popcounts, which are derived
// from the same pairs array rather than a second, duplicated index.
func (idx *Index) Select0(d *bitvector.Data, k int) (int, bool) {
	numZeros := d.Len() - idx.numOnes
	if k < 0 || k >= numZeros {
		return 0, false
	}
	b := numSuperBlocks(idx.pairs)
	lo, hi := 0, b
	if idx.select0Hints != nil {
		h := k >> hintSampleLog2
		lo = int(idx.select0Hints[h])
		hi = int(idx.select0Hints[h+1]) + 1
		if hi > b {
			hi = b
		}
	}
	blk := idx.locateSuperBlock0(k, lo, hi)
	cumZerosAtStart := superBlockBits*blk - int(idx.pairs[2*blk])
	rem := k - cumZerosAtStart

	field := idx.pairs[2*blk+1]
	s, subStart := 0, 0
	for ss := 1; ss < 8; ss++ {
		onesField := int((field >> uint((ss-1)*9)) & 0x1ff)
		zerosField := ss*64 - onesField
		if zerosField > rem {
			break
		}
		s, subStart = ss, zerosField
	}
	words := d.Words()
	wordIdx := blk*8 + s
	var w bitvector.Word
	if wordIdx < len(words) {
		w = words[wordIdx]
	}
	pos := wordIdx*bitvector.WordBits + bitvector.SelectInWord(^w, rem-subStart)
	if pos < d.Len() {
		return pos, true
	}
	return 0, false
}

// SizeInBytes reports a tight accounting of the index's own backing
// storage, not counting the bit vector it indexes.
func (idx *Index) SizeInBytes() int {
	return 8*len(idx.pairs) + 4*len(idx.select1Hints) + 4*len(idx.select0Hints)
}
