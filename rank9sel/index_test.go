package rank9sel_test

import (
	"math/rand"
	"testing"

	"github.com/triblespace/sucds/bitvector"
	"github.com/triblespace/sucds/rank9sel"
)

func build(t *testing.T, bits []bool, opts rank9sel.Options) bitvector.Vector[*rank9sel.Index] {
	t.Helper()
	b := bitvector.NewBuilder()
	b.ExtendBits(bitvector.SliceBits(bits))
	v, err := bitvector.Freeze[*rank9sel.Index](b, rank9sel.New(opts))
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	return v
}

func TestRank9SelBasic(t *testing.T) {
	v := build(t, []bool{true, false, false, true}, rank9sel.Options{Select1: true, Select0: true})
	if v.NumBits() != 4 || v.NumOnes() != 2 {
		t.Fatalf("NumBits=%d NumOnes=%d, want 4,2", v.NumBits(), v.NumOnes())
	}
	if bit, ok := v.Access(1); !ok || bit {
		t.Errorf("Access(1) = (%v,%v), want (false,true)", bit, ok)
	}
	if r, ok := v.Rank1(1); !ok || r != 1 {
		t.Errorf("Rank1(1) = (%d,%v), want (1,true)", r, ok)
	}
	if r, ok := v.Rank0(1); !ok || r != 0 {
		t.Errorf("Rank0(1) = (%d,%v), want (0,true)", r, ok)
	}
	if p, ok := v.Select1(1); !ok || p != 3 {
		t.Errorf("Select1(1) = (%d,%v), want (3,true)", p, ok)
	}
	if p, ok := v.Select0(0); !ok || p != 1 {
		t.Errorf("Select0(0) = (%d,%v), want (1,true)", p, ok)
	}
}

func TestRank9SelAllZeros(t *testing.T) {
	bits := make([]bool, 5000)
	v := build(t, bits, rank9sel.Options{Select1: true, Select0: true})
	if r, ok := v.Rank1(4000); !ok || r != 0 {
		t.Errorf("Rank1(4000) = (%d,%v), want (0,true)", r, ok)
	}
	if _, ok := v.Select1(0); ok {
		t.Error("Select1(0) on all-zeros should be ok=false")
	}
	if p, ok := v.Select0(4999); !ok || p != 4999 {
		t.Errorf("Select0(4999) = (%d,%v), want (4999,true)", p, ok)
	}
}

func TestRank9SelAllOnes(t *testing.T) {
	bits := make([]bool, 5000)
	for i := range bits {
		bits[i] = true
	}
	v := build(t, bits, rank9sel.Options{Select1: true, Select0: true})
	if r, ok := v.Rank0(4000); !ok || r != 0 {
		t.Errorf("Rank0(4000) = (%d,%v), want (0,true)", r, ok)
	}
	if _, ok := v.Select0(0); ok {
		t.Error("Select0(0) on all-ones should be ok=false")
	}
	if p, ok := v.Select1(4999); !ok || p != 4999 {
		t.Errorf("Select1(4999) = (%d,%v), want (4999,true)", p, ok)
	}
}

func TestRank9SelNoHint(t *testing.T) {
	bits := make([]bool, 3000)
	for i := range bits {
		bits[i] = i%3 == 0
	}
	v := build(t, bits, rank9sel.Options{})
	if p, ok := v.Select1(10); !ok || p != 30 {
		t.Errorf("Select1(10) without hints = (%d,%v), want (30,true)", p, ok)
	}
	if p, ok := v.Select0(0); !ok || p != 1 {
		t.Errorf("Select0(0) without hints = (%d,%v), want (1,true)", p, ok)
	}
}

func TestRank9SelLargeSequenceSpaceBound(t *testing.T) {
	r := rand.New(rand.NewSource(555))
	const n = 1 << 20
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.Intn(2) == 1
	}

	noHints := build(t, bits, rank9sel.Options{})
	withHints := build(t, bits, rank9sel.Options{Select1: true, Select0: true})

	for trial := 0; trial < 10000; trial++ {
		k := r.Intn(withHints.NumOnes())
		got, ok := withHints.Select1(k)
		want, wantOK := noHints.Select1(k)
		if ok != wantOK || got != want {
			t.Fatalf("Select1(%d) = (%d,%v), want (%d,%v)", k, got, ok, want, wantOK)
		}
	}

	if size := withHints.Index.SizeInBytes(); float64(size*8)/float64(n) > 1.30 {
		t.Errorf("SizeInBytes() with hints = %d (%.3f bits/bit), want <= 1.30", size, float64(size*8)/float64(n))
	}
	if size := noHints.Index.SizeInBytes(); float64(size*8)/float64(n) > 1.26 {
		t.Errorf("SizeInBytes() without hints = %d (%.3f bits/bit), want <= 1.26", size, float64(size*8)/float64(n))
	}
}

func TestRank9SelPropertyAgainstNoIndex(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 30; trial++ {
		n := r.Intn(4000)
		bits := make([]bool, n)
		var ones, zeros []int
		for i := range bits {
			bits[i] = r.Intn(2) == 1
			if bits[i] {
				ones = append(ones, i)
			} else {
				zeros = append(zeros, i)
			}
		}

		withHints := build(t, bits, rank9sel.Options{Select1: true, Select0: true})
		withoutHints := build(t, bits, rank9sel.Options{})

		for _, v := range []bitvector.Vector[*rank9sel.Index]{withHints, withoutHints} {
			for k, pos := range ones {
				got, ok := v.Select1(k)
				if !ok || got != pos {
					t.Fatalf("trial %d: Select1(%d) = (%d,%v), want (%d,true)", trial, k, got, ok, pos)
				}
			}
			for k, pos := range zeros {
				got, ok := v.Select0(k)
				if !ok || got != pos {
					t.Fatalf("trial %d: Select0(%d) = (%d,%v), want (%d,true)", trial, k, got, ok, pos)
				}
			}
			for i := 0; i <= n; i += 13 {
				want := 0
				for _, pos := range ones {
					if pos < i {
						want++
					}
				}
				got, ok := v.Rank1(i)
				if !ok || got != want {
					t.Fatalf("trial %d: Rank1(%d) = (%d,%v), want (%d,true)", trial, i, got, ok, want)
				}
			}
		}
	}
}
