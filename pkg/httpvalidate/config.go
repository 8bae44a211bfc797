package httpvalidate

import "github.com/dmitrymomot/proptypes/pkg/config"

// Config holds middleware settings loadable from the environment.
type Config struct {
	MaxBodySize  int64 `env:"PROPTYPES_MAX_BODY_SIZE" envDefault:"1048576"` // MaxBodySize limits JSON request bodies, in bytes.
	SkipDefaults bool  `env:"PROPTYPES_SKIP_DEFAULTS" envDefault:"false"`   // SkipDefaults stores props without checker defaults applied.
}

// WithConfig applies the non-zero values of cfg.
func WithConfig(cfg Config) Option {
	return func(c *options) {
		if cfg.MaxBodySize > 0 {
			c.maxBodySize = cfg.MaxBodySize
		}
		if cfg.SkipDefaults {
			c.skipDefaults = true
		}
	}
}

// LoadConfig reads Config from the environment through config.Load,
// so repeated calls return the cached result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
