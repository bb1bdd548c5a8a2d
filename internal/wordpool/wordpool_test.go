package wordpool

import "testing"

func TestGetReturnsRequestedLength(t *testing.T) {
	for _, n := range []int{0, 1, 64, 300, 100000} {
		s := Get(n)
		if len(s) != n {
			t.Errorf("Get(%d) returned length %d", n, len(s))
		}
	}
}

func TestPutGetReuse(t *testing.T) {
	s := Get(128)
	s[0] = 42
	Put(s)
	s2 := Get(128)
	_ = s2 // reuse is an optimization detail, not a correctness guarantee
}
