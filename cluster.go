package fastqdedup

import "fmt"

// ClusterMember is one sequence popped out of a cluster, together with
// the number of input reads it represents.
type ClusterMember struct {
	Count    uint32
	Sequence []byte
}

// PopCluster destructively removes and returns one cluster of mutually
// near sequences: it picks an arbitrary seed still in the trie,
// deletes it, then repeatedly searches the remaining trie for a
// sequence within maxDistance Hamming mismatches of any sequence
// already in the cluster, deleting and appending each one it finds,
// until no member of the cluster has any more neighbours left in the
// trie. It fails with ErrEmpty if the trie holds nothing to pop.
func (t *Trie) PopCluster(maxDistance int) ([]ClusterMember, error) {
	if t.root == nil {
		return nil, ErrEmpty
	}
	if maxDistance < 0 {
		return nil, fmt.Errorf("fastqdedup: max distance must be non-negative, got %d", maxDistance)
	}

	if cap(t.scratch) < t.maxSeqLen {
		t.scratch = make([]byte, t.maxSeqLen)
	}

	seedLen, err := t.firstSequence(t.root, t.scratch[:t.maxSeqLen])
	if err != nil {
		return nil, fmt.Errorf("fastqdedup: locating cluster seed: %w", err)
	}
	seed := append([]byte(nil), t.scratch[:seedLen]...)
	seedCount, err := t.deleteSequence(&t.root, seed)
	if err != nil {
		return nil, fmt.Errorf("fastqdedup: internal: seed vanished mid-pop: %w", err)
	}
	t.numSequences -= int(seedCount)

	cluster := []ClusterMember{{Count: seedCount, Sequence: seed}}

	i := 0
	for i < len(cluster) && t.root != nil {
		template := cluster[i].Sequence
		scratch := t.scratch[:len(template)]
		count := t.findNearest(t.root, template, maxDistance, scratch)
		if count == 0 {
			i++
			continue
		}
		found := append([]byte(nil), scratch...)
		if _, err := t.deleteSequence(&t.root, found); err != nil {
			return cluster, fmt.Errorf("fastqdedup: internal: matched sequence vanished mid-pop: %w", err)
		}
		t.numSequences -= int(count)
		cluster = append(cluster, ClusterMember{Count: count, Sequence: found})
	}
	return cluster, nil
}
