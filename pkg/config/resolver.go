package config

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/siyuan-infoblox/order-imports/pkg/organizer"
)

const resolverCacheSize = 512

// Resolver returns the organizer configuration of a file: the base
// configuration with the nearest local config file applied. Results are
// cached per directory.
type Resolver struct {
	base  organizer.Config
	cache *lru.Cache[string, organizer.Config]
}

// NewResolver creates a Resolver on top of base
func NewResolver(base organizer.Config) *Resolver {
	cache, err := lru.New[string, organizer.Config](resolverCacheSize)
	if err != nil {
		panic(err) // only fails for a non-positive size
	}
	return &Resolver{base: base, cache: cache}
}

// Base returns the configuration used when no local config file applies
func (r *Resolver) Base() organizer.Config {
	return r.base
}

// Resolve returns the configuration for filePath
func (r *Resolver) Resolve(filePath string) (organizer.Config, error) {
	dir := filepath.Dir(filePath)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if cfg, ok := r.cache.Get(dir); ok {
		return cfg, nil
	}

	cfg := r.base
	if path := FindLocal(filePath); path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return r.base, err
		}
		cfg = fc.Apply(cfg)
	}
	r.cache.Add(dir, cfg)
	return cfg, nil
}

// Purge drops every cached configuration, e.g. after a local config file changed
func (r *Resolver) Purge() {
	r.cache.Purge()
}
