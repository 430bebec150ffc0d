package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
	"os"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNoPermissions     = errors.New("no permissions configured")
	ErrUnknownPermission = errors.New("unknown permission")
)

// PermissionSource returns permission names. The i-th name is granted by bit i.
type PermissionSource func(ctx context.Context) ([]string, error)

// FilePermissions reads a JSON array of permission names.
func FilePermissions(path string) PermissionSource {
	return func(ctx context.Context) ([]string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return names, nil
	}
}

// PermissionCache resolves permission names to bit codes. The table is loaded
// on first use; concurrent first calls share one load and a failed load is
// retried on the next call.
type PermissionCache struct {
	source PermissionSource
	group  singleflight.Group

	mu    sync.RWMutex
	codes map[string]uint64
	// gen counts invalidations. A load only stores its table when no
	// invalidation happened since it started.
	gen uint64
}

func NewPermissionCache(source PermissionSource) *PermissionCache {
	return &PermissionCache{source: source}
}

func (c *PermissionCache) Codes(ctx context.Context) (map[string]uint64, error) {
	c.mu.RLock()
	codes, gen := c.codes, c.gen
	c.mu.RUnlock()
	if codes != nil {
		return codes, nil
	}

	// the load is shared by every waiting caller
	loadCtx := context.WithoutCancel(ctx)

	v, err, _ := c.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		names, err := c.source(loadCtx)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, ErrNoPermissions
		}
		if len(names) > 64 {
			return nil, fmt.Errorf("%d permissions do not fit a 64 bit mask", len(names))
		}

		loaded := make(map[string]uint64, len(names))
		for i, name := range names {
			loaded[name] = 1 << i
		}

		c.mu.Lock()
		if c.gen == gen {
			c.codes = loaded
		}
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]uint64), nil
}

// Invalidate drops the table; the next call reloads it. A load already in
// flight still answers its callers but is not kept.
func (c *PermissionCache) Invalidate() {
	c.mu.Lock()
	c.codes = nil
	c.gen++
	c.mu.Unlock()
}

// Mask sums the codes of the named permissions.
func (c *PermissionCache) Mask(ctx context.Context, names ...string) (uint64, error) {
	codes, err := c.Codes(ctx)
	if err != nil {
		return 0, err
	}
	var mask uint64
	for _, name := range names {
		code, ok := codes[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownPermission, name)
		}
		mask |= code
	}
	return mask, nil
}

// Missing lists the required permissions absent from granted, lowest bit first.
func Missing(granted, required uint64, codes map[string]uint64) []string {
	names := make(map[uint64]string, len(codes))
	for name, code := range codes {
		names[code] = name
	}

	out := make([]string, 0)
	for rest := required &^ granted; rest != 0; rest &= rest - 1 {
		bit := uint64(1) << bits.TrailingZeros64(rest)
		out = append(out, names[bit])
	}
	return out
}
