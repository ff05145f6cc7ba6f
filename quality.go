package fastqdedup

import (
	"math"

	"github.com/biogo/biogo/alphabet"
)

// DefaultPhredOffset is the ASCII offset used by the Sanger/Illumina
// 1.8+ FASTQ quality encoding ('!' == phred 0).
const DefaultPhredOffset byte = 33

// scoreToErrorRate[q] is 10^(-q/10), the probability a base call at
// phred score q is wrong. Regenerated at init time from
// score_to_error_rate.h's formula rather than carrying its 128-entry
// literal verbatim.
var scoreToErrorRate = computeScoreToErrorRate()

func computeScoreToErrorRate() [128]float64 {
	var t [128]float64
	for q := range t {
		t[q] = math.Pow(10, -float64(q)/10)
	}
	return t
}

// QualityFilter rejects reads whose average per-base error rate
// exceeds a threshold, derived from ASCII phred quality bytes.
type QualityFilter struct {
	// Threshold is the maximum acceptable average per-base error
	// probability; reads with a higher average are rejected.
	Threshold float64
	// PhredOffset is the ASCII value representing phred score 0.
	PhredOffset byte
}

// NewQualityFilter returns a QualityFilter for the given threshold. A
// zero phredOffset is replaced with DefaultPhredOffset.
func NewQualityFilter(threshold float64, phredOffset byte) *QualityFilter {
	if phredOffset == 0 {
		phredOffset = DefaultPhredOffset
	}
	return &QualityFilter{Threshold: threshold, PhredOffset: phredOffset}
}

// phredScore converts one ASCII quality byte to a raw phred score,
// failing with ErrBadPhred if b falls outside [offset, 126] (the
// printable ASCII range FASTQ quality strings are restricted to).
func phredScore(b, offset byte) (alphabet.Qphred, error) {
	if b < offset || b > 126 {
		return 0, ErrBadPhred
	}
	return alphabet.Qphred(b - offset), nil
}

// Passes reports whether the average per-base error rate implied by
// phredASCII is at or below the filter's threshold. An empty quality
// string trivially passes, since there are no bases to accumulate
// error over.
func (q *QualityFilter) Passes(phredASCII []byte) (bool, error) {
	if len(phredASCII) == 0 {
		return true, nil
	}
	var sum float64
	for _, b := range phredASCII {
		score, err := phredScore(b, q.PhredOffset)
		if err != nil {
			return false, err
		}
		sum += scoreToErrorRate[int(score)]
	}
	avg := sum / float64(len(phredASCII))
	return avg <= q.Threshold, nil
}
