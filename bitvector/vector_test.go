package bitvector

import "testing"

func TestFromDataRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.ExtendBits(SliceBits([]bool{true, true, false, true, false, false, true}))
	length, raw := b.IntoBytes()

	d, err := FromBytes(length, raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	v, err := FromData[NoIndex](d, NoIndex{})
	if err != nil {
		t.Fatalf("FromData: %v", err)
	}
	if v.NumBits() != 7 || v.NumOnes() != 4 {
		t.Fatalf("got NumBits=%d NumOnes=%d, want 7,4", v.NumBits(), v.NumOnes())
	}
}
