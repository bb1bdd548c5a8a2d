package bitvector

// NoIndex is the plain, index-free configuration: Access is O(1), and
// rank/select fall back to a linear scan over words, computed in word
// units via popcount/select-in-word rather than bit at a time.
type NoIndex struct{}

// Build is a no-op; NoIndex carries no precomputed state.
func (NoIndex) Build(d *Data) error { return nil }

// NumOnes sums the popcount of every backing word, masking the
// unspecified tail of the final word first.
func (NoIndex) NumOnes(d *Data) int {
	words := d.words
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words[:len(words)-1] {
		total += PopCount(w)
	}
	total += PopCount(words[len(words)-1] & d.TailMask())
	return total
}

// Rank1 scans whole words up to pos, then masks the partial final word.
func (NoIndex) Rank1(d *Data, pos int) (int, bool) {
	if pos < 0 || pos > d.len {
		return 0, false
	}
	wpos, left := pos/WordBits, pos%WordBits
	r := 0
	for _, w := range d.words[:wpos] {
		r += PopCount(w)
	}
	if left != 0 {
		r += PopCount(d.words[wpos] << uint(WordBits-left))
	}
	return r, true
}

// Select1 scans words accumulating popcount until the target word is
// found, then resolves the exact bit via SelectInWord.
func (NoIndex) Select1(d *Data, k int) (int, bool) {
	if k < 0 {
		return 0, false
	}
	wpos, curRank := 0, 0
	for wpos < len(d.words) {
		cnt := PopCount(d.words[wpos])
		if k < curRank+cnt {
			break
		}
		wpos++
		curRank += cnt
	}
	if wpos == len(d.words) {
		return 0, false
	}
	return wpos*WordBits + SelectInWord(d.words[wpos], k-curRank), true
}

// Select0 mirrors Select1 over the complement of each word, masking the
// unspecified tail bits of the final word as ones (so they never count as
// zeros), and checks the candidate against Len before returning it, since
// the complement of the final word can otherwise yield positions past the
// end of the vector.
func (NoIndex) Select0(d *Data, k int) (int, bool) {
	if k < 0 {
		return 0, false
	}
	wpos, curRank := 0, 0
	for wpos < len(d.words) {
		w := ^d.words[wpos]
		if wpos == len(d.words)-1 {
			w &= d.TailMask()
		}
		cnt := PopCount(w)
		if k < curRank+cnt {
			break
		}
		wpos++
		curRank += cnt
	}
	if wpos == len(d.words) {
		return 0, false
	}
	w := ^d.words[wpos]
	if wpos == len(d.words)-1 {
		w &= d.TailMask()
	}
	sel := wpos*WordBits + SelectInWord(w, k-curRank)
	if sel < d.len {
		return sel, true
	}
	return 0, false
}
