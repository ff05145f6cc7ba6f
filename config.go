package fastqdedup

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Config carries the engine's tunables for the CLI layer. The core
// library itself takes these as plain parameters; Config exists so
// cmd/fastqdedup can load them from a YAML file and/or the
// environment.
type Config struct {
	MaxHammingDistance int     `yaml:"max_hamming_distance" env:"FASTQDEDUP_MAX_HAMMING_DISTANCE" env-default:"1"`
	QualityThreshold   float64 `yaml:"quality_threshold" env:"FASTQDEDUP_QUALITY_THRESHOLD" env-default:"0.01"`
	PhredOffset        byte    `yaml:"phred_offset" env:"FASTQDEDUP_PHRED_OFFSET" env-default:"33"`
	SeedAlphabet       string  `yaml:"seed_alphabet" env:"FASTQDEDUP_SEED_ALPHABET"`
}

// LoadConfig reads a Config from path if given, falling back to
// environment variables and the field defaults above when path is
// empty.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "fastqdedup: read config from environment")
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "fastqdedup: read config %q", path)
	}
	return &cfg, nil
}
