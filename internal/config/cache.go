package config

import "strings"

// CacheConfig selects the durable key-value cache backing session, bookmarks and logos.
type CacheConfig struct {
	Driver string `env:"COMPANION_CACHE_DRIVER" envDefault:"memory"`
	Path   string `env:"COMPANION_CACHE_PATH"   envDefault:"data/companion.db"`
}

func (c *CacheConfig) normalize() {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	if c.Driver != CacheSQLite {
		c.Driver = CacheMemory
	}
}
