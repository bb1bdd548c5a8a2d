package bitvector

import (
	"fmt"

	"github.com/triblespace/sucds/internal/wordpool"
)

// Builder accumulates bits into a growable word buffer. It is not safe for
// concurrent use, and must not be used after Freeze or IntoBytes consumes
// it, mirroring the move-by-value consumption of the builder this module
// is modeled on.
type Builder struct {
	words  []Word
	length int
	frozen bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) checkLive() {
	if b.frozen {
		panic("bitvector: builder used after freeze")
	}
}

// ensureCapacity grows b.words by the classic grow-and-copy pattern
// (allocate bigger, copy over, keep going), sourcing the new buffer from
// internal/wordpool's scratch pool and returning the old backing array to
// it instead of allocating fresh via make() every time.
func (b *Builder) ensureCapacity(extra int) {
	needed := len(b.words) + extra
	if needed <= cap(b.words) {
		return
	}
	newCap := cap(b.words)*3/2 + 1
	if newCap < needed {
		newCap = needed
	}
	grown := wordpool.Get(newCap)[:len(b.words)]
	copy(grown, b.words)
	if b.words != nil {
		wordpool.Put(b.words[:cap(b.words)])
	}
	b.words = grown
}

// PushBit appends a single bit.
func (b *Builder) PushBit(bit bool) {
	b.checkLive()
	posInWord := b.length % WordBits
	var v Word
	if bit {
		v = 1
	}
	if posInWord == 0 {
		b.ensureCapacity(1)
		b.words = append(b.words, v)
	} else {
		b.words[len(b.words)-1] |= v << uint(posInWord)
	}
	b.length++
}

// PushBits appends the low n bits of v, most significant of the n pushed
// last. n must be in 0..=WordBits.
func (b *Builder) PushBits(v Word, n int) error {
	b.checkLive()
	if n < 0 || n > WordBits {
		return fmt.Errorf("%w: n must be in 0..=%d, got %d", ErrWidthOutOfRange, WordBits, n)
	}
	if n == 0 {
		return nil
	}
	var mask Word
	if n < WordBits {
		mask = (Word(1) << uint(n)) - 1
	} else {
		mask = ^Word(0)
	}
	v &= mask
	posInWord := b.length % WordBits
	if posInWord == 0 {
		b.ensureCapacity(1)
		b.words = append(b.words, v)
	} else {
		b.words[len(b.words)-1] |= v << uint(posInWord)
		if n > WordBits-posInWord {
			b.ensureCapacity(1)
			b.words = append(b.words, v>>uint(WordBits-posInWord))
		}
	}
	b.length += n
	return nil
}

// SetBit overwrites an already-pushed bit in place.
func (b *Builder) SetBit(pos int, bit bool) error {
	b.checkLive()
	if pos < 0 || pos >= b.length {
		return fmt.Errorf("%w: pos must be less than %d, got %d", ErrPositionOutOfRange, b.length, pos)
	}
	word, shift := pos/WordBits, pos%WordBits
	b.words[word] &^= Word(1) << uint(shift)
	if bit {
		b.words[word] |= Word(1) << uint(shift)
	}
	return nil
}

// ExtendBits folds PushBit over a lazy bit sequence: next is called
// repeatedly until it returns ok=false, and each bit it yields is pushed in
// order.
func (b *Builder) ExtendBits(next func() (bool, bool)) {
	for {
		bit, ok := next()
		if !ok {
			return
		}
		b.PushBit(bit)
	}
}

// SliceBits adapts a []bool into the lazy iterator form ExtendBits expects.
func SliceBits(bits []bool) func() (bool, bool) {
	i := 0
	return func() (bool, bool) {
		if i >= len(bits) {
			return false, false
		}
		bit := bits[i]
		i++
		return bit, true
	}
}

// Len returns the number of bits pushed so far.
func (b *Builder) Len() int { return b.length }

// freezeData consumes the builder, transferring ownership of its word
// buffer into an immutable Data without copying.
func (b *Builder) freezeData() Data {
	b.checkLive()
	b.frozen = true
	words := b.words
	length := b.length
	b.words = nil
	b.length = 0
	return newData(words, length)
}

// IntoBytes consumes the builder and returns its bit length and a
// zero-copy byte view of the backing words, without attaching an index.
func (b *Builder) IntoBytes() (length int, bytes []byte) {
	d := b.freezeData()
	return d.Bytes()
}
