// Package intvector implements CompactVector, a fixed-width packed array
// of integers built on a plain bitvector.Vector.
package intvector

import (
	"errors"
	"fmt"

	"github.com/triblespace/sucds/bitvector"
)

var (
	// ErrWidthOutOfRange is returned when a requested bit width is not in
	// 1..=64.
	ErrWidthOutOfRange = errors.New("intvector: width out of range")
	// ErrValueOutOfRange is returned when a value does not fit in the
	// configured width.
	ErrValueOutOfRange = errors.New("intvector: value out of range")
	// ErrPositionOutOfRange is returned when a position argument addresses
	// an element that does not exist yet.
	ErrPositionOutOfRange = errors.New("intvector: position out of range")
)

// Meta carries the metadata FromBytes needs to reinterpret a serialized
// CompactVector's backing bytes.
type Meta struct {
	Len   int
	Width int
}

// Builder accumulates fixed-width integers into a CompactVector.
type Builder struct {
	chunks *bitvector.Builder
	len    int
	width  int
}

// NewBuilder returns a Builder packing values into width-bit slots. width
// must be in 1..=64.
func NewBuilder(width int) (*Builder, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("%w: width must be in 1..=64, got %d", ErrWidthOutOfRange, width)
	}
	return &Builder{chunks: bitvector.NewBuilder(), width: width}, nil
}

func (b *Builder) fits(v uint64) bool {
	return b.width == 64 || v>>uint(b.width) == 0
}

// PushInt appends v, which must fit in the builder's width.
func (b *Builder) PushInt(v uint64) error {
	if !b.fits(v) {
		return fmt.Errorf("%w: val must fit in %d bits, got %d", ErrValueOutOfRange, b.width, v)
	}
	if err := b.chunks.PushBits(v, b.width); err != nil {
		return err
	}
	b.len++
	return nil
}

// SetInt overwrites an already-pushed element.
func (b *Builder) SetInt(pos int, v uint64) error {
	if pos < 0 || pos >= b.len {
		return fmt.Errorf("%w: pos must be less than %d, got %d", ErrPositionOutOfRange, b.len, pos)
	}
	if !b.fits(v) {
		return fmt.Errorf("%w: val must fit in %d bits, got %d", ErrValueOutOfRange, b.width, v)
	}
	for i := 0; i < b.width; i++ {
		bit := (v>>uint(i))&1 == 1
		if err := b.chunks.SetBit(pos*b.width+i, bit); err != nil {
			return err
		}
	}
	return nil
}

// Extend appends each value in vals via PushInt.
func (b *Builder) Extend(vals []uint64) error {
	for _, v := range vals {
		if err := b.PushInt(v); err != nil {
			return err
		}
	}
	return nil
}

// Freeze consumes the builder into a CompactVector.
func (b *Builder) Freeze() (*CompactVector, error) {
	chunks, err := bitvector.Freeze[bitvector.NoIndex](b.chunks, bitvector.NoIndex{})
	if err != nil {
		return nil, err
	}
	return &CompactVector{chunks: chunks, len: b.len, width: b.width}, nil
}

// CompactVector is a fixed-width packed array of non-negative integers.
type CompactVector struct {
	chunks bitvector.Vector[bitvector.NoIndex]
	len    int
	width  int
}

// New returns a Builder for the given width; it is the entry point for
// constructing a CompactVector one element at a time.
func New(width int) (*Builder, error) { return NewBuilder(width) }

// FromInt builds a CompactVector of n copies of val.
func FromInt(val uint64, n, width int) (*CompactVector, error) {
	b, err := NewBuilder(width)
	if err != nil {
		return nil, err
	}
	if !b.fits(val) {
		return nil, fmt.Errorf("%w: val must fit in %d bits, got %d", ErrValueOutOfRange, width, val)
	}
	for i := 0; i < n; i++ {
		if err := b.PushInt(val); err != nil {
			return nil, err
		}
	}
	return b.Freeze()
}

// FromSlice builds a CompactVector sized to the smallest width that fits
// every value in vals.
func FromSlice(vals []uint64) (*CompactVector, error) {
	if len(vals) == 0 {
		return emptyCompactVector()
	}
	var maxVal uint64
	for _, v := range vals {
		if v > maxVal {
			maxVal = v
		}
	}
	b, err := NewBuilder(bitvector.NeededBits(maxVal))
	if err != nil {
		return nil, err
	}
	if err := b.Extend(vals); err != nil {
		return nil, err
	}
	return b.Freeze()
}

func emptyCompactVector() (*CompactVector, error) {
	b, err := NewBuilder(1)
	if err != nil {
		return nil, err
	}
	v, err := b.Freeze()
	if err != nil {
		return nil, err
	}
	v.width = 0
	return v, nil
}

// GetInt returns the pos-th element.
func (c *CompactVector) GetInt(pos int) (uint64, bool) {
	return c.chunks.Data.GetBits(pos*c.width, c.width)
}

// Access is an alias for GetInt, matching the Access trait of sibling
// index structures.
func (c *CompactVector) Access(pos int) (uint64, bool) { return c.GetInt(pos) }

// Len returns the number of elements stored.
func (c *CompactVector) Len() int { return c.len }

// IsEmpty reports whether Len is zero.
func (c *CompactVector) IsEmpty() bool { return c.len == 0 }

// Width returns the configured bit width of each element.
func (c *CompactVector) Width() int { return c.width }

// ToSlice decodes every element into a plain slice.
func (c *CompactVector) ToSlice() []uint64 {
	out := make([]uint64, c.len)
	for i := range out {
		out[i], _ = c.GetInt(i)
	}
	return out
}

// ToBytes returns the metadata and a zero-copy byte view of the backing
// storage.
func (c *CompactVector) ToBytes() (Meta, []byte) {
	_, b := c.chunks.Data.Bytes()
	return Meta{Len: c.len, Width: c.width}, b
}

// FromBytes reconstructs a CompactVector from bytes produced by ToBytes.
func FromBytes(meta Meta, b []byte) (*CompactVector, error) {
	d, err := bitvector.FromBytes(meta.Len*meta.Width, b)
	if err != nil {
		return nil, err
	}
	chunks, err := bitvector.FromData[bitvector.NoIndex](d, bitvector.NoIndex{})
	if err != nil {
		return nil, err
	}
	return &CompactVector{chunks: chunks, len: meta.Len, width: meta.Width}, nil
}
