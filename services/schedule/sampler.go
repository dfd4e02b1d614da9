package schedule

import "math/rand"

// SampleSlots picks a random subset of the catalog for one working day:
// between 3 and 5 labels (uniform), drawn without replacement by removing a
// uniformly random index from a shrinking working copy. Output order is
// removal order, not catalog order.
//
// The catalog must hold at least 5 entries; smaller catalogs are a caller
// error.
func SampleSlots(rng *rand.Rand, catalog []string) []string {
	n := 3 + rng.Intn(3)

	pool := make([]string, len(catalog))
	copy(pool, catalog)

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		j := rng.Intn(len(pool))
		out = append(out, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return out
}
