package fastqdedup

import "testing"

func TestQualityFilterPassesHighQuality(t *testing.T) {
	qf := NewQualityFilter(0.01, 0)
	// 'I' is phred 40 at the default offset 33: error rate 1e-4, well
	// under the 0.01 threshold.
	ok, err := qf.Passes([]byte("IIIIIIII"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Passes() = false for uniformly high-quality bases")
	}
}

func TestQualityFilterRejectsLowQuality(t *testing.T) {
	qf := NewQualityFilter(0.01, 0)
	// '#' is phred 2 at the default offset: error rate ~0.63, far above
	// the threshold.
	ok, err := qf.Passes([]byte("########"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Passes() = true for uniformly low-quality bases")
	}
}

func TestQualityFilterDefaultOffset(t *testing.T) {
	qf := NewQualityFilter(1, 0)
	if qf.PhredOffset != DefaultPhredOffset {
		t.Fatalf("PhredOffset = %d, want default %d", qf.PhredOffset, DefaultPhredOffset)
	}
}

func TestQualityFilterRejectsOutOfRangeByte(t *testing.T) {
	qf := NewQualityFilter(1, 33)
	if _, err := qf.Passes([]byte{' '}); err != ErrBadPhred {
		t.Fatalf("err = %v, want ErrBadPhred for a byte below the offset", err)
	}
}

func TestQualityFilterEmptyQualityPasses(t *testing.T) {
	qf := NewQualityFilter(0, 33)
	ok, err := qf.Passes(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Passes(nil) = false, want vacuous true")
	}
}

func TestScoreToErrorRateTableMonotonic(t *testing.T) {
	for q := 1; q < len(scoreToErrorRate); q++ {
		if scoreToErrorRate[q] >= scoreToErrorRate[q-1] {
			t.Fatalf("error rate at phred %d (%g) is not lower than at %d (%g)", q, scoreToErrorRate[q], q-1, scoreToErrorRate[q-1])
		}
	}
}
