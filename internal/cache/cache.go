// Package cache provides result caching for generated ad variants. Two
// implementations exist: an in-process map for single-node deployments and
// tests, and a Redis-backed store for shared deployments. Callers depend on
// the Cache interface and receive the implementation by injection.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mbaxter/adforge/internal/types"
)

// Cache stores complete variant sets keyed by request identity.
type Cache interface {
	// Get returns the cached variants for key. The second return reports
	// whether the key was present.
	Get(ctx context.Context, key string) ([]types.GeneratedVariant, bool, error)
	// Put stores the variants under key, replacing any existing entry.
	Put(ctx context.Context, key string, ads []types.GeneratedVariant) error
}

// Key derives the cache key for a request. Identity is the lowercased
// brand, competitor, ZIP and variant count; hashing keeps keys short and
// shields raw input from key listings.
func Key(brand, competitor, zipcode string, count int) string {
	raw := strings.ToLower(fmt.Sprintf("%s|%s|%s|%d", brand, competitor, zipcode, count))
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
