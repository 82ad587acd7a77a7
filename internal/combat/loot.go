package combat

import "math/rand"

// SampleLoot picks the drop from an inventory: the only item of a
// single-item inventory, otherwise one or two distinct items chosen without
// replacement. An empty inventory drops nothing.
func SampleLoot[T any](items []T, rng *rand.Rand) []T {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return []T{items[0]}
	}

	count := 1 + rng.Intn(2)
	picked := make([]T, 0, count)
	for _, i := range rng.Perm(len(items))[:count] {
		picked = append(picked, items[i])
	}
	return picked
}
