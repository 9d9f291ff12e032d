package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Bind populates a struct annotated with `env:"..."` tags from the
// environment. It complements the key-by-key provider chain for
// components that take a whole configuration block at once.
func Bind[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to bind %T: %w", cfg, err)
	}
	return cfg, nil
}
