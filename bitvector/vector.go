package bitvector

// Index is implemented by a sidecar index structure built over a frozen
// Data. Implementations are expected to be pointer types so Build can
// populate them in place; rank0/num_zeros have no entry here because they
// are computed generically by Vector from rank1/num_ones, mirroring the
// default trait methods of the structure this module is modeled on.
type Index interface {
	// Build computes the index from d. It is called exactly once, by
	// Freeze or FromData.
	Build(d *Data) error
	// NumOnes returns the number of set bits in d.
	NumOnes(d *Data) int
	// Rank1 returns the number of set bits before pos, or ok=false if pos
	// is out of range.
	Rank1(d *Data, pos int) (rank int, ok bool)
	// Select1 returns the position of the (k+1)-th set bit, or ok=false if
	// out of range.
	Select1(d *Data, k int) (pos int, ok bool)
	// Select0 returns the position of the (k+1)-th unset bit, or ok=false
	// if out of range.
	Select0(d *Data, k int) (pos int, ok bool)
}

// Vector is a bit vector paired with a sidecar index of type I. The
// monomorphised type parameter, rather than a boxed interface value, keeps
// query dispatch a static call at every call site.
type Vector[I Index] struct {
	Data  Data
	Index I
}

// Freeze consumes b, building idx over the resulting Data.
func Freeze[I Index](b *Builder, idx I) (Vector[I], error) {
	d := b.freezeData()
	if err := idx.Build(&d); err != nil {
		return Vector[I]{}, err
	}
	return Vector[I]{Data: d, Index: idx}, nil
}

// FromData attaches idx to an already-frozen Data, e.g. one produced by
// FromBytes.
func FromData[I Index](d Data, idx I) (Vector[I], error) {
	if err := idx.Build(&d); err != nil {
		return Vector[I]{}, err
	}
	return Vector[I]{Data: d, Index: idx}, nil
}

// Access returns the pos-th bit.
func (v Vector[I]) Access(pos int) (bool, bool) { return v.Data.Access(pos) }

// NumBits returns the number of bits stored.
func (v Vector[I]) NumBits() int { return v.Data.Len() }

// NumOnes returns the number of set bits.
func (v Vector[I]) NumOnes() int { return v.Index.NumOnes(&v.Data) }

// NumZeros returns the number of unset bits.
func (v Vector[I]) NumZeros() int { return v.NumBits() - v.NumOnes() }

// Rank1 returns the number of set bits before pos.
func (v Vector[I]) Rank1(pos int) (int, bool) { return v.Index.Rank1(&v.Data, pos) }

// Rank0 returns the number of unset bits before pos.
func (v Vector[I]) Rank0(pos int) (int, bool) {
	r, ok := v.Index.Rank1(&v.Data, pos)
	if !ok {
		return 0, false
	}
	return pos - r, true
}

// Select1 returns the position of the (k+1)-th set bit.
func (v Vector[I]) Select1(k int) (int, bool) { return v.Index.Select1(&v.Data, k) }

// Select0 returns the position of the (k+1)-th unset bit.
func (v Vector[I]) Select0(k int) (int, bool) { return v.Index.Select0(&v.Data, k) }
