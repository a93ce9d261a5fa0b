package hash

import "github.com/cespare/xxhash/v2"

// separator delimits names inside a subset key; it cannot appear in a CSV header cell.
const separator = "\x00"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// SubsetID computes the xxHash64 of an ordered list of names.
//
// The names are hashed in order with a NUL separator, so ["ab", "c"] and
// ["a", "bc"] produce different ids, and so do ["a", "b"] and ["b", "a"].
func SubsetID(names []string) uint64 {
	d := xxhash.New()
	for i, name := range names {
		if i > 0 {
			_, _ = d.WriteString(separator)
		}
		_, _ = d.WriteString(name)
	}

	return d.Sum64()
}

// SubsetKey returns the canonical string form hashed by SubsetID.
// It is used to confirm a cache hit is not a hash collision.
func SubsetKey(names []string) string {
	n := 0
	for _, name := range names {
		n += len(name) + len(separator)
	}

	b := make([]byte, 0, n)
	for i, name := range names {
		if i > 0 {
			b = append(b, separator...)
		}
		b = append(b, name...)
	}

	return string(b)
}
