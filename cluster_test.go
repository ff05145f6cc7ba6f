package fastqdedup

import "testing"

func TestPopClusterEmptyTrie(t *testing.T) {
	tr := NewTrie()
	if _, err := tr.PopCluster(0); err != ErrEmpty {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestPopClusterGroupsNearSequences(t *testing.T) {
	tr := NewTrie()
	for _, s := range []string{"AAAA", "AAAT", "TTTT"} {
		if err := tr.AddString(s); err != nil {
			t.Fatal(err)
		}
	}
	cluster, err := tr.PopCluster(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cluster) != 2 {
		t.Fatalf("len(cluster) = %d, want 2 (AAAA and AAAT)", len(cluster))
	}
	seen := map[string]bool{}
	for _, m := range cluster {
		seen[string(m.Sequence)] = true
	}
	if !seen["AAAA"] || !seen["AAAT"] {
		t.Fatalf("cluster = %+v, want AAAA and AAAT grouped together", cluster)
	}
	if tr.NumberOfSequences() != 1 {
		t.Fatalf("NumberOfSequences() after pop = %d, want 1 (TTTT left)", tr.NumberOfSequences())
	}

	second, err := tr.PopCluster(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 1 || string(second[0].Sequence) != "TTTT" {
		t.Fatalf("second cluster = %+v, want just TTTT", second)
	}

	if _, err := tr.PopCluster(1); err != ErrEmpty {
		t.Fatalf("err = %v, want ErrEmpty once the trie is drained", err)
	}
}

func TestPopClusterZeroDistanceKeepsExactDuplicatesTogether(t *testing.T) {
	tr := NewTrie()
	for i := 0; i < 5; i++ {
		if err := tr.AddString("ACGT"); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.AddString("TTTT"); err != nil {
		t.Fatal(err)
	}
	cluster, err := tr.PopCluster(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(cluster) != 1 || cluster[0].Count != 5 {
		t.Fatalf("cluster = %+v, want a single member with count 5", cluster)
	}
}

func TestPopClusterRejectsNegativeDistance(t *testing.T) {
	tr := NewTrie()
	if err := tr.AddString("A"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.PopCluster(-1); err == nil {
		t.Fatal("PopCluster(-1) succeeded, want an error")
	}
}

func TestPopClusterChainsThroughIntermediateNeighbours(t *testing.T) {
	tr := NewTrie()
	// AAAA and CCCC are four apart; but a chain of single-mismatch
	// neighbours links them through the cluster's growing template list.
	for _, s := range []string{"AAAA", "AAAC", "AACC", "ACCC", "CCCC"} {
		if err := tr.AddString(s); err != nil {
			t.Fatal(err)
		}
	}
	cluster, err := tr.PopCluster(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cluster) != 5 {
		t.Fatalf("len(cluster) = %d, want 5 (whole chain linked transitively)", len(cluster))
	}
}
