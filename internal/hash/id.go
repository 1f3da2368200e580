// Package hash derives 64-bit group keys from identifier tuples.
package hash

import "github.com/cespare/xxhash/v2"

// Tuple components are joined with a unit separator so that ("ab","c") and
// ("a","bc") hash differently.
const sep = "\x1f"

// Key computes the xxHash64 of an identifier tuple. Keys are used as map
// keys when partitioning a frame into id groups; callers must still compare
// tuples component-wise on lookup since distinct tuples can collide.
func Key(parts []string) uint64 {
	if len(parts) == 0 {
		return xxhash.Sum64String("")
	}
	if len(parts) == 1 {
		return xxhash.Sum64String(parts[0])
	}

	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.WriteString(sep)
		}
		_, _ = d.WriteString(p)
	}

	return d.Sum64()
}
