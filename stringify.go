package fastqdedup

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// clusterLeaf is one (sequence, count) pair surfaced while walking the
// trie for String/Fprint.
type clusterLeaf struct {
	seq   []byte
	count uint32
}

// String renders the trie as a tree-diagram dump, in the style of the
// teacher's stringify.go, one line per stored sequence.
func (t *Trie) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}

// Fprint writes a tree-diagram dump of the trie to w: a root marker
// followed by one "├─ (count) sequence" line per distinct sequence
// currently stored ("└─" on the last one), in alphabet-insertion order.
func (t *Trie) Fprint(w io.Writer) error {
	if t == nil {
		return errors.New("fastqdedup: nil trie")
	}
	if _, err := fmt.Fprintln(w, "▼"); err != nil {
		return err
	}
	var leaves []clusterLeaf
	collectLeaves(t.root, t.alphabet, nil, &leaves)
	for i, leaf := range leaves {
		branch := "├─ "
		if i == len(leaves)-1 {
			branch = "└─ "
		}
		if _, err := fmt.Fprintf(w, "%s(%d) %s\n", branch, leaf.count, leaf.seq); err != nil {
			return err
		}
	}
	return nil
}

// collectLeaves walks n depth-first in alphabet-insertion order,
// appending one clusterLeaf per node that carries a non-zero count —
// a terminal node's suffix, or an internal node's own (empty-suffix)
// count.
func collectLeaves(n node, alphabet *Alphabet, path []byte, out *[]clusterLeaf) {
	switch v := n.(type) {
	case nil:
		return
	case *terminalNode:
		if v.count == 0 {
			return
		}
		seq := make([]byte, len(path)+len(v.suffix))
		copy(seq, path)
		copy(seq[len(path):], v.suffix)
		*out = append(*out, clusterLeaf{seq: seq, count: v.count})
	case *internalNode:
		if v.count > 0 {
			seq := make([]byte, len(path))
			copy(seq, path)
			*out = append(*out, clusterLeaf{seq: seq, count: v.count})
		}
		for i, c := range v.children {
			if c == nil {
				continue
			}
			childPath := make([]byte, len(path)+1)
			copy(childPath, path)
			childPath[len(path)] = alphabet.byteAt(i)
			collectLeaves(c, alphabet, childPath, out)
		}
	}
}
