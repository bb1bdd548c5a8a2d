package bitvector

import (
	"fmt"
	"unsafe"
)

// Data is the frozen, immutable word storage backing a bit vector. It is
// safe for concurrent read-only access from multiple goroutines.
type Data struct {
	words []Word
	len   int
}

func newData(words []Word, length int) Data {
	return Data{words: words, len: length}
}

func wordsFor(lenBits int) int {
	return (lenBits + WordBits - 1) / WordBits
}

// Len returns the number of bits stored.
func (d Data) Len() int { return d.len }

// NumWords returns the number of Words backing the vector.
func (d Data) NumWords() int { return len(d.words) }

// Words returns the raw backing words. Index implementations use this to
// compute block-level statistics directly; bits at positions >= Len() in
// the final word are unspecified and must be masked off by the caller
// before they are interpreted as set/unset.
func (d Data) Words() []Word { return d.words }

// TailMask returns a mask, applicable to the final word, that keeps only
// the bits below Len() and clears the unspecified tail.
func (d Data) TailMask() Word {
	if d.len == 0 {
		return 0
	}
	rem := d.len % WordBits
	if rem == 0 {
		return ^Word(0)
	}
	return (Word(1) << uint(rem)) - 1
}

// Access returns the pos-th bit, or ok=false if pos is out of range.
func (d Data) Access(pos int) (bit bool, ok bool) {
	if pos < 0 || pos >= d.len {
		return false, false
	}
	block, shift := pos/WordBits, pos%WordBits
	return (d.words[block]>>uint(shift))&1 == 1, true
}

// GetBits returns the n-bit value starting at pos, or ok=false if the range
// is invalid (n > WordBits, or [pos, pos+n) exceeds Len()).
func (d Data) GetBits(pos, n int) (value Word, ok bool) {
	if n < 0 || n > WordBits || pos < 0 || pos+n > d.len {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}
	block, shift := pos/WordBits, pos%WordBits
	var mask Word
	if n < WordBits {
		mask = (Word(1) << uint(n)) - 1
	} else {
		mask = ^Word(0)
	}
	if shift+n <= WordBits {
		return (d.words[block] >> uint(shift)) & mask, true
	}
	bits := (d.words[block] >> uint(shift)) | ((d.words[block+1] << uint(WordBits-shift)) & mask)
	return bits, true
}

// FromBytes reinterprets b, borrowed from the caller, as the Word storage
// for a bit vector of the given length. b must be aligned to WordBits/8
// bytes and large enough to hold length bits; this is a zero-copy view that
// borrows the caller-owned buffer instead of copying it defensively.
func FromBytes(length int, b []byte) (Data, error) {
	if length < 0 {
		return Data{}, fmt.Errorf("%w: length must be non-negative, got %d", ErrPositionOutOfRange, length)
	}
	need := wordsFor(length) * (WordBits / 8)
	if len(b) < need {
		return Data{}, fmt.Errorf("%w: need %d bytes for %d bits, got %d", ErrBufferTooSmall, need, length, len(b))
	}
	if len(b) == 0 {
		return newData(nil, length), nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(Word(0)) != 0 {
		return Data{}, fmt.Errorf("%w: buffer address is not %d-byte aligned", ErrBufferMisaligned, unsafe.Alignof(Word(0)))
	}
	numWords := wordsFor(length)
	words := unsafe.Slice((*Word)(unsafe.Pointer(&b[0])), numWords)
	return newData(words, length), nil
}

// Bytes returns the bit length and a zero-copy byte view of the backing
// words, suitable for serialisation or for handing to FromBytes elsewhere.
func (d Data) Bytes() (length int, b []byte) {
	if len(d.words) == 0 {
		return d.len, nil
	}
	b = unsafe.Slice((*byte)(unsafe.Pointer(&d.words[0])), len(d.words)*(WordBits/8))
	return d.len, b
}
