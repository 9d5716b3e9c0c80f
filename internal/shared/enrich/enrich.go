// Package enrich resolves foreign-key columns on listing results into
// display values with one batched lookup per column instead of one
// query per row.
package enrich

import "context"

// Lookup fetches display values for a batch of distinct ids. Ids with
// no match are simply absent from the returned map.
type Lookup[K comparable, V any] func(ctx context.Context, ids []K) (map[K]V, error)

// Resolve collects the distinct non-zero keys of rows, runs one
// batched lookup, and returns the resulting map. Rows whose key did
// not resolve stay absent, so callers render them as null rather than
// failing the listing.
func Resolve[T any, K comparable, V any](
	ctx context.Context,
	rows []T,
	key func(T) (K, bool),
	lookup Lookup[K, V],
) (map[K]V, error) {
	if len(rows) == 0 {
		return map[K]V{}, nil
	}

	seen := make(map[K]struct{}, len(rows))
	ids := make([]K, 0, len(rows))
	for _, row := range rows {
		k, ok := key(row)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		ids = append(ids, k)
	}

	if len(ids) == 0 {
		return map[K]V{}, nil
	}

	return lookup(ctx, ids)
}
