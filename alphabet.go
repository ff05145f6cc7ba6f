package fastqdedup

// alphabetAbsent marks a byte that has not yet been interned.
const alphabetAbsent = 255

// maxAlphabetSize is the largest number of distinct bytes an Alphabet
// can learn, so assigned indices run from 0 to 253. The index value
// 255 (alphabetAbsent) marks a byte that has not been seen.
const maxAlphabetSize = 254

// Alphabet is a learned byte-to-index bijection. Indices are assigned
// on first sight, in the order bytes are interned, and never change
// once assigned.
type Alphabet struct {
	forward [maxAlphabetSize]byte
	inverse [256]uint8
	size    int
}

func newAlphabet() *Alphabet {
	a := &Alphabet{}
	for i := range a.inverse {
		a.inverse[i] = alphabetAbsent
	}
	return a
}

// newAlphabetFromSeed pre-interns the bytes of seed, in order, so that
// their indices are fixed regardless of insertion order afterwards.
func newAlphabetFromSeed(seed []byte) (*Alphabet, error) {
	if len(seed) > maxAlphabetSize {
		return nil, ErrInvalidAlphabet
	}
	a := newAlphabet()
	for _, b := range seed {
		if a.inverse[b] != alphabetAbsent {
			return nil, ErrInvalidAlphabet
		}
		a.inverse[b] = uint8(a.size)
		a.forward[a.size] = b
		a.size++
	}
	return a, nil
}

// IndexOf reports the index assigned to b, if any.
func (a *Alphabet) IndexOf(b byte) (idx uint8, ok bool) {
	idx = a.inverse[b]
	if idx == alphabetAbsent {
		return 0, false
	}
	return idx, true
}

// Intern returns the index assigned to b, assigning it the next free
// index if b has not been seen before. It fails with ErrAlphabetFull
// once 254 distinct bytes have been interned.
func (a *Alphabet) Intern(b byte) (uint8, error) {
	if idx := a.inverse[b]; idx != alphabetAbsent {
		return idx, nil
	}
	if a.size >= maxAlphabetSize {
		return 0, ErrAlphabetFull
	}
	idx := uint8(a.size)
	a.inverse[b] = idx
	a.forward[a.size] = b
	a.size++
	return idx, nil
}

// byteAt returns the byte interned at index i. The caller must know i
// is in range (i.e. i < Size()); it is only called from trusted
// internal callers walking an existing child vector.
func (a *Alphabet) byteAt(i int) byte {
	return a.forward[i]
}

// Size reports how many distinct bytes have been interned so far.
func (a *Alphabet) Size() int {
	return a.size
}

// Bytes returns a copy of the interned bytes, in index order.
func (a *Alphabet) Bytes() []byte {
	out := make([]byte, a.size)
	copy(out, a.forward[:a.size])
	return out
}
