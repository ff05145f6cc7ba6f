package fastqdedup

import (
	"sync"
	"sync/atomic"
)

// nodePool recycles internalNodes across terminal-to-internal
// conversions, the single most allocation-heavy step in Add. Adapted
// from the teacher's generic pool[V] (pool.go), de-generified since
// our node type is concrete.
type nodePool struct {
	raw            sync.Pool
	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

func newNodePool() *nodePool {
	p := &nodePool{}
	p.raw.New = func() any {
		p.totalAllocated.Add(1)
		return &internalNode{}
	}
	return p
}

// get returns a zeroed *internalNode, either recycled or freshly
// allocated. A nil receiver (a pool-less Trie, should one ever exist)
// falls back to plain allocation.
func (p *nodePool) get() *internalNode {
	if p == nil {
		return &internalNode{}
	}
	p.currentLive.Add(1)
	return p.raw.Get().(*internalNode)
}

// put returns n to the pool for reuse once it has been pruned out of
// the trie. The caller must not touch n again afterwards.
func (p *nodePool) put(n *internalNode) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	n.children = n.children[:0]
	n.count = 0
	p.raw.Put(n)
}

// PoolStats reports the node allocator's lifetime allocation count and
// its current number of live (in-use) internal nodes.
type PoolStats struct {
	TotalAllocated int64
	CurrentLive    int64
}

// PoolStats exposes the trie's node allocator counters, mainly useful
// for verbose diagnostics in cmd/fastqdedup.
func (t *Trie) PoolStats() PoolStats {
	return PoolStats{
		TotalAllocated: t.pool.totalAllocated.Load(),
		CurrentLive:    t.pool.currentLive.Load(),
	}
}
