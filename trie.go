package fastqdedup

import "bytes"

// Trie indexes a set of byte sequences for approximate-match lookup
// and destructive clustering. The zero value is not usable; construct
// one with NewTrie or NewTrieWithSeed.
type Trie struct {
	alphabet     *Alphabet
	root         node
	numSequences int
	maxSeqLen    int
	scratch      []byte
	pool         *nodePool
}

// NewTrie returns an empty trie with no pre-seeded alphabet; bytes are
// interned in the order Add first observes them.
func NewTrie() *Trie {
	return &Trie{alphabet: newAlphabet(), pool: newNodePool()}
}

// NewTrieWithSeed returns an empty trie whose alphabet indices are
// fixed up front, in the order the bytes of seed appear, rather than
// being assigned on first insert. It fails with ErrInvalidAlphabet if
// seed repeats a byte or names more than 254 of them.
func NewTrieWithSeed(seed []byte) (*Trie, error) {
	a, err := newAlphabetFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &Trie{alphabet: a, pool: newNodePool()}, nil
}

// Alphabet returns the bytes interned so far, in index order.
func (t *Trie) Alphabet() []byte {
	return t.alphabet.Bytes()
}

// NumberOfSequences reports how many sequences (counting duplicates)
// the trie currently holds.
func (t *Trie) NumberOfSequences() int {
	return t.numSequences
}

// Add inserts seq, incrementing its count if already present. It
// fails with ErrSequenceTooLong, ErrAlphabetFull or ErrNodeTooWide.
func (t *Trie) Add(seq []byte) error {
	if len(seq) > maxSuffixSize {
		return ErrSequenceTooLong
	}
	if err := t.addSequence(&t.root, seq, 1); err != nil {
		return err
	}
	t.numSequences++
	if len(seq) > t.maxSeqLen {
		t.maxSeqLen = len(seq)
	}
	return nil
}

// AddString is a convenience wrapper around Add for string input,
// validating that every rune fits in a single byte (ASCII/Latin-1)
// before converting.
func (t *Trie) AddString(seq string) error {
	b, err := validateASCIISequence(seq)
	if err != nil {
		return err
	}
	return t.Add(b)
}

// addSequence implements the recursive insert: it walks (or builds)
// the path for seq starting at *slot, converting a terminal node into
// an internal one in place when the inserted sequence and the stored
// suffix diverge.
func (t *Trie) addSequence(slot *node, seq []byte, count uint32) error {
	cur := *slot
	if cur == nil {
		*slot = newTerminalNode(append([]byte(nil), seq...), count)
		return nil
	}
	if term, ok := cur.(*terminalNode); ok {
		if bytes.Equal(term.suffix, seq) {
			term.count += count
			return nil
		}
		oldSuffix, oldCount := term.suffix, term.count
		*slot = t.pool.get()
		if err := t.addSequence(slot, oldSuffix, oldCount); err != nil {
			return err
		}
		cur = *slot
	}
	in := cur.(*internalNode)
	if len(seq) == 0 {
		in.count += count
		return nil
	}
	idx, err := t.alphabet.Intern(seq[0])
	if err != nil {
		return err
	}
	if err := in.ensureWidth(idx); err != nil {
		return err
	}
	return t.addSequence(&in.children[idx], seq[1:], count)
}

// Contains reports whether the trie holds a sequence within
// maxDistance Hamming mismatches of seq, following the same
// first-match (not closest-match) search find-nearest uses internally.
// It fails with ErrSequenceTooLong for an oversized query.
func (t *Trie) Contains(seq []byte, maxDistance int) (bool, error) {
	if len(seq) > maxSuffixSize {
		return false, ErrSequenceTooLong
	}
	count := t.findNearest(t.root, seq, maxDistance, nil)
	return count != 0, nil
}

// ContainsString is the string convenience wrapper for Contains.
func (t *Trie) ContainsString(seq string, maxDistance int) (bool, error) {
	b, err := validateASCIISequence(seq)
	if err != nil {
		return false, err
	}
	return t.Contains(b, maxDistance)
}

// findNearest performs a bounded, first-match depth-first search for a
// sequence equal in length to seq and within budget mismatches of it.
// On a hit it returns the stored count and, if buf is non-nil, writes
// the matched sequence into buf (which must be at least len(seq)
// bytes). It returns 0 on an exhausted budget or no match.
func (t *Trie) findNearest(n node, seq []byte, budget int, buf []byte) uint32 {
	if budget < 0 || n == nil {
		return 0
	}
	if term, ok := n.(*terminalNode); ok {
		if len(seq) != len(term.suffix) {
			return 0
		}
		d := budget
		for i := range seq {
			if seq[i] != term.suffix[i] {
				d--
				if d < 0 {
					return 0
				}
			}
		}
		if buf != nil {
			copy(buf, term.suffix)
		}
		return term.count
	}
	in := n.(*internalNode)
	if len(seq) == 0 {
		return in.count
	}
	if idx, ok := t.alphabet.IndexOf(seq[0]); ok {
		if child := in.getChild(idx); child != nil {
			var childBuf []byte
			if buf != nil {
				buf[0] = seq[0]
				childBuf = buf[1:]
			}
			if c := t.findNearest(child, seq[1:], budget, childBuf); c != 0 {
				return c
			}
		}
	}
	budget--
	if budget < 0 {
		return 0
	}
	for i, child := range in.children {
		if child == nil {
			continue
		}
		var childBuf []byte
		if buf != nil {
			buf[0] = t.alphabet.byteAt(i)
			childBuf = buf[1:]
		}
		if c := t.findNearest(child, seq[1:], budget, childBuf); c != 0 {
			return c
		}
	}
	return 0
}

// deleteSequence removes an exact match for seq from *slot, returning
// its count. It prunes an internalNode left with no children back to a
// terminal (if it still carries its own count) or to nil, matching the
// original trie's compaction behaviour.
func (t *Trie) deleteSequence(slot *node, seq []byte) (uint32, error) {
	cur := *slot
	if cur == nil {
		return 0, errNotFound
	}
	if term, ok := cur.(*terminalNode); ok {
		if !bytes.Equal(term.suffix, seq) {
			return 0, errNotFound
		}
		count := term.count
		*slot = nil
		return count, nil
	}
	in := cur.(*internalNode)
	if len(seq) == 0 {
		if in.count == 0 {
			return 0, errNotFound
		}
		count := in.count
		in.count = 0
		return count, nil
	}
	idx, ok := t.alphabet.IndexOf(seq[0])
	if !ok {
		return 0, errNotFound
	}
	child := in.getChild(idx)
	if child == nil {
		return 0, errNotFound
	}
	count, err := t.deleteSequence(&in.children[idx], seq[1:])
	if err != nil {
		return 0, err
	}
	if !in.hasChildren() {
		if in.count > 0 {
			*slot = newTerminalNode(nil, in.count)
		} else {
			*slot = nil
		}
		t.pool.put(in)
	}
	return count, nil
}

// firstSequence writes the lowest (in alphabet-insertion order)
// sequence reachable from n into buf, returning its length. It fails
// with errBufferTooSmall if buf is not large enough, or if it reaches
// a node with neither children nor its own count — which should not
// happen in a properly pruned trie.
func (t *Trie) firstSequence(n node, buf []byte) (int, error) {
	if term, ok := n.(*terminalNode); ok {
		if len(term.suffix) > len(buf) {
			return 0, errBufferTooSmall
		}
		copy(buf, term.suffix)
		return len(term.suffix), nil
	}
	in := n.(*internalNode)
	if len(buf) < 1 {
		return 0, errBufferTooSmall
	}
	for i, child := range in.children {
		if child == nil {
			continue
		}
		buf[0] = t.alphabet.byteAt(i)
		n, err := t.firstSequence(child, buf[1:])
		if err != nil {
			return 0, err
		}
		return 1 + n, nil
	}
	if in.count > 0 {
		return 0, nil
	}
	return 0, errBufferTooSmall
}

// MemorySize estimates the trie's in-memory footprint in bytes: one
// header per node plus the bytes of every stored suffix and child
// pointer.
func (t *Trie) MemorySize() int {
	return memorySize(t.root)
}

const (
	nodeHeaderSize = 8 // packed alphabet-size/flag word + count, as in the original layout
	pointerSize    = 8
)

func memorySize(n node) int {
	switch v := n.(type) {
	case nil:
		return 0
	case *terminalNode:
		return nodeHeaderSize + len(v.suffix)
	case *internalNode:
		size := nodeHeaderSize + len(v.children)*pointerSize
		for _, c := range v.children {
			size += memorySize(c)
		}
		return size
	default:
		return 0
	}
}

// LayerStats reports, for one depth of the trie, how many terminal
// nodes live there and how many internal nodes of each child-vector
// width live there.
type LayerStats struct {
	Depth          int
	Terminals      int
	InternalWidths map[int]int
}

// RawStats walks the whole trie once and returns one LayerStats per
// depth that holds any node, ordered shallowest first.
func (t *Trie) RawStats() []LayerStats {
	byDepth := map[int]*LayerStats{}
	var walk func(n node, depth int)
	walk = func(n node, depth int) {
		if n == nil {
			return
		}
		ls := byDepth[depth]
		if ls == nil {
			ls = &LayerStats{Depth: depth, InternalWidths: map[int]int{}}
			byDepth[depth] = ls
		}
		switch v := n.(type) {
		case *terminalNode:
			ls.Terminals++
		case *internalNode:
			ls.InternalWidths[len(v.children)]++
			for _, c := range v.children {
				walk(c, depth+1)
			}
		}
	}
	walk(t.root, 0)

	depths := make([]int, 0, len(byDepth))
	for d := range byDepth {
		depths = append(depths, d)
	}
	sortInts(depths)

	out := make([]LayerStats, len(depths))
	for i, d := range depths {
		out[i] = *byDepth[d]
	}
	return out
}

// sortInts is a tiny insertion sort: RawStats never sees more than a
// handful of distinct depths, so pulling in sort.Ints for it isn't
// worth the import.
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// validateASCIISequence converts a Go string to a byte sequence,
// failing with ErrNonASCII if any rune doesn't fit in a single byte.
func validateASCIISequence(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, ErrNonASCII
		}
		out = append(out, byte(r))
	}
	return out, nil
}
