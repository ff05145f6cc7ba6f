package fastqdedup

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FASTQDEDUP_MAX_HAMMING_DISTANCE", "2")
	t.Setenv("FASTQDEDUP_QUALITY_THRESHOLD", "0.05")
	t.Setenv("FASTQDEDUP_PHRED_OFFSET", "64")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, 2, cfg.MaxHammingDistance)
	require.Equal(t, 0.05, cfg.QualityThreshold)
	require.Equal(t, byte(64), cfg.PhredOffset)
}

func TestLoadConfigFromYAMLFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "fastqdedup-*.yaml")
	require.NoError(t, err)
	_, err = f.WriteString("max_hamming_distance: 3\nquality_threshold: 0.02\nphred_offset: 33\nseed_alphabet: ACGTN\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cfg, err := LoadConfig(f.Name())
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxHammingDistance)
	require.Equal(t, 0.02, cfg.QualityThreshold)
	require.Equal(t, "ACGTN", cfg.SeedAlphabet)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/to/config.yaml")
	require.Error(t, err)
}
