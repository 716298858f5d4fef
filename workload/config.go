package workload

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the TOML workload profile consumed by binheap-load.
//
// Example:
//
//	ops = 100000
//	seed = 42
//	key_min = 1
//	key_max = 1000000
//	verify = true
//
//	[mix]
//	insert = 60
//	delete_min = 20
//	decrease_key = 10
//	delete = 5
//	meld = 5
type Config struct {
	Ops    int64 `toml:"ops"`
	Seed   int64 `toml:"seed"`
	KeyMin int   `toml:"key_min"`
	KeyMax int   `toml:"key_max"`
	Verify bool  `toml:"verify"`
	Mix    Mix   `toml:"mix"`
}

// Mix holds the relative weights used to pick the next operation. Weights
// need not sum to anything in particular; they only have to be non-negative,
// with insert strictly positive so the runner can always make progress.
type Mix struct {
	Insert      int `toml:"insert"`
	DeleteMin   int `toml:"delete_min"`
	DecreaseKey int `toml:"decrease_key"`
	Delete      int `toml:"delete"`
	Meld        int `toml:"meld"`
}

func (m Mix) total() int {
	return m.Insert + m.DeleteMin + m.DecreaseKey + m.Delete + m.Meld
}

func DefaultConfig() *Config {
	return &Config{
		Ops:    10000,
		KeyMin: 0,
		KeyMax: 1 << 20,
		Verify: false,
		Mix: Mix{
			Insert:      50,
			DeleteMin:   25,
			DecreaseKey: 15,
			Delete:      5,
			Meld:        5,
		},
	}
}

// LoadConfig reads a TOML profile, layered over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot read workload profile %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid workload profile %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Ops <= 0 {
		return errors.Errorf("ops must be positive, got %d", c.Ops)
	}
	if c.KeyMax < c.KeyMin {
		return errors.Errorf("key range [%d, %d] is empty", c.KeyMin, c.KeyMax)
	}
	if c.Mix.Insert <= 0 {
		return errors.New("mix.insert must be positive")
	}
	if c.Mix.DeleteMin < 0 || c.Mix.DecreaseKey < 0 || c.Mix.Delete < 0 || c.Mix.Meld < 0 {
		return errors.New("mix weights cannot be negative")
	}
	return nil
}
