// Package dacsbyte implements byte-level Directly Addressable Codes: a
// variable-length integer encoding with O(1) random access, split into
// fixed levels of one byte each with rank9sel-backed continuation flags.
package dacsbyte

import (
	"github.com/triblespace/sucds/bitvector"
	"github.com/triblespace/sucds/rank9sel"
)

const (
	levelWidth = 8
	levelMask  = (1 << levelWidth) - 1
)

// DacsByte stores a slice of non-negative integers across byte levels: the
// first level holds the low byte of every value, the second level holds
// the next byte of every value still needing it, and so on. A value's
// presence in level j+1 is recorded by a flag bit in level j's flag
// vector, indexed with rank1 to map a position into the next level's
// local index space.
type DacsByte struct {
	data  [][]byte
	flags []bitvector.Vector[*rank9sel.Index]
}

// FromSlice builds a DacsByte holding vals.
func FromSlice(vals []uint64) (*DacsByte, error) {
	if len(vals) == 0 {
		return &DacsByte{data: [][]byte{{}}}, nil
	}

	var maxVal uint64
	for _, v := range vals {
		if v > maxVal {
			maxVal = v
		}
	}
	numBits := bitvector.NeededBits(maxVal)
	numLevels := (numBits + levelWidth - 1) / levelWidth
	if numLevels == 0 {
		numLevels = 1
	}

	if numLevels == 1 {
		data := make([]byte, len(vals))
		for i, v := range vals {
			data[i] = byte(v & levelMask)
		}
		return &DacsByte{data: [][]byte{data}}, nil
	}

	data := make([][]byte, numLevels)
	flagBuilders := make([]*bitvector.Builder, numLevels-1)
	for j := range flagBuilders {
		flagBuilders[j] = bitvector.NewBuilder()
	}

	for _, v := range vals {
		x := v
		for j := 0; j < numLevels; j++ {
			data[j] = append(data[j], byte(x&levelMask))
			x >>= levelWidth
			if j == numLevels-1 {
				break
			}
			if x == 0 {
				flagBuilders[j].PushBit(false)
				break
			}
			flagBuilders[j].PushBit(true)
		}
	}

	flags := make([]bitvector.Vector[*rank9sel.Index], numLevels-1)
	for j, fb := range flagBuilders {
		fv, err := bitvector.Freeze[*rank9sel.Index](fb, rank9sel.New(rank9sel.Options{Select1: true, Select0: true}))
		if err != nil {
			return nil, err
		}
		flags[j] = fv
	}

	return &DacsByte{data: data, flags: flags}, nil
}

// Access decodes the pos-th value, or ok=false if pos is out of range.
func (d *DacsByte) Access(pos int) (uint64, bool) {
	if pos < 0 || pos >= d.Len() {
		return 0, false
	}
	var x uint64
	for j := 0; j < d.NumLevels(); j++ {
		x |= uint64(d.data[j][pos]) << uint(j*levelWidth)
		if j == d.NumLevels()-1 {
			break
		}
		bit, _ := d.flags[j].Access(pos)
		if !bit {
			break
		}
		pos, _ = d.flags[j].Rank1(pos)
	}
	return x, true
}

// Len returns the number of values stored.
func (d *DacsByte) Len() int { return len(d.data[0]) }

// IsEmpty reports whether Len is zero.
func (d *DacsByte) IsEmpty() bool { return d.Len() == 0 }

// NumLevels returns the number of byte levels used.
func (d *DacsByte) NumLevels() int { return len(d.data) }
