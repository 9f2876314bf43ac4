package infer

import (
	"context"
	"encoding/json"
	"log"
	"net/netip"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
)

const cacheTTL = 48 * time.Hour

// PathCache memoizes per-vantage reconstruction results in Redis, keyed
// by the knowledge-base fingerprint so a stale snapshot can never serve a
// newer run. A sync.Map front avoids repeated Redis round-trips within
// one process. Redis failures only cost the memoization: they are logged
// and the caller recomputes.
type PathCache struct {
	redis       *redis.Client
	ctx         context.Context
	fingerprint string
	local       sync.Map // netip.Addr -> map[netip.Prefix]models.Path
}

// NewPathCache creates a cache for one input snapshot. client may be nil,
// in which case only the in-process layer is used.
func NewPathCache(client *redis.Client, fingerprint string) *PathCache {
	return &PathCache{
		redis:       client,
		ctx:         context.Background(),
		fingerprint: fingerprint,
	}
}

// Get returns a previously computed reconstruction for vantage.
func (c *PathCache) Get(vantage netip.Addr) (map[netip.Prefix]models.Path, bool) {
	if v, ok := c.local.Load(vantage); ok {
		return v.(map[netip.Prefix]models.Path), true
	}
	if c.redis == nil {
		return nil, false
	}

	data, err := c.redis.Get(c.ctx, c.key(vantage)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis get error: %v", err)
		}
		return nil, false
	}
	paths, err := decodePaths(data)
	if err != nil {
		log.Printf("Discarding undecodable cache entry for %s: %v", vantage, err)
		return nil, false
	}
	c.local.Store(vantage, paths)
	return paths, true
}

// Put stores a reconstruction result.
func (c *PathCache) Put(vantage netip.Addr, paths map[netip.Prefix]models.Path) {
	c.local.Store(vantage, paths)
	if c.redis == nil {
		return
	}

	data, err := encodePaths(paths)
	if err != nil {
		log.Printf("Failed to encode cache entry for %s: %v", vantage, err)
		return
	}
	if err := c.redis.Set(c.ctx, c.key(vantage), data, cacheTTL).Err(); err != nil {
		log.Printf("Redis set error: %v", err)
	}
}

func (c *PathCache) key(vantage netip.Addr) string {
	return "vantage:paths:" + c.fingerprint + ":" + vantage.String()
}

func encodePaths(paths map[netip.Prefix]models.Path) ([]byte, error) {
	out := make(map[string]models.Path, len(paths))
	for prefix, p := range paths {
		out[prefix.String()] = p
	}
	return json.Marshal(out)
}

func decodePaths(data []byte) (map[netip.Prefix]models.Path, error) {
	var in map[string]models.Path
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	out := make(map[netip.Prefix]models.Path, len(in))
	for s, p := range in {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return nil, err
		}
		out[prefix] = p
	}
	return out, nil
}
