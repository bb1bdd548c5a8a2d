package bitvector

import "errors"

var (
	// ErrWidthOutOfRange is returned when a bit-width argument is outside
	// its valid range (0..=WordBits for a single push/read).
	ErrWidthOutOfRange = errors.New("bitvector: width out of range")
	// ErrPositionOutOfRange is returned when a position argument addresses
	// a bit that does not exist yet.
	ErrPositionOutOfRange = errors.New("bitvector: position out of range")
	// ErrBufferTooSmall is returned by FromBytes when the supplied buffer
	// cannot hold the requested number of bits.
	ErrBufferTooSmall = errors.New("bitvector: buffer too small")
	// ErrBufferMisaligned is returned by FromBytes when the supplied
	// buffer's address is not aligned to WordBits/8 bytes, so it cannot be
	// reinterpreted as a []Word without copying.
	ErrBufferMisaligned = errors.New("bitvector: buffer misaligned")
)
