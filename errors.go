package fastqdedup

import "errors"

// Sentinel errors returned across the package boundary. Callers should
// compare with errors.Is, since some are also returned wrapped with
// additional context via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidAlphabet is returned by NewTrieWithSeed when the seed
	// string contains a repeated byte or exceeds the alphabet size limit.
	ErrInvalidAlphabet = errors.New("fastqdedup: invalid alphabet seed")

	// ErrAlphabetFull is returned when a 255th distinct byte is observed.
	ErrAlphabetFull = errors.New("fastqdedup: alphabet already holds 254 distinct bytes")

	// ErrNonASCII is returned when a string argument contains a rune that
	// does not fit in a single byte (i.e. is not ASCII/Latin-1).
	ErrNonASCII = errors.New("fastqdedup: sequence contains a multi-byte character")

	// ErrSequenceTooLong is returned when a sequence exceeds the 31-bit
	// suffix length limit.
	ErrSequenceTooLong = errors.New("fastqdedup: sequence exceeds maximum length")

	// ErrNodeTooWide is returned when a child vector would have to grow
	// past 254 slots.
	ErrNodeTooWide = errors.New("fastqdedup: node child vector exceeds maximum width")

	// ErrEmpty is returned by PopCluster when the trie holds no sequences.
	ErrEmpty = errors.New("fastqdedup: trie is empty")

	// ErrBadPhred is returned by QualityFilter.Passes when a quality byte
	// falls outside [offset, 126].
	ErrBadPhred = errors.New("fastqdedup: phred quality byte out of range")

	// ErrUnequalLength is returned by HammingDistance for inputs of
	// different lengths (Hamming distance is undefined for those).
	ErrUnequalLength = errors.New("fastqdedup: hamming distance requires equal-length inputs")

	// errNotFound and errBufferTooSmall steer control inside the
	// recursive delete/enumerate algorithms. They never cross the
	// package boundary: delete's NotFound only arises for sequences the
	// caller never added (pop_cluster always deletes what it just
	// found), and BufferTooSmall does not arise because PopCluster sizes
	// its buffer to the longest sequence ever added.
	errNotFound       = errors.New("fastqdedup: sequence not present")
	errBufferTooSmall = errors.New("fastqdedup: buffer too small for sequence")
)
