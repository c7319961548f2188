package database

import "fmt"

// PairKey returns the same key for (a, b) and (b, a).
func PairKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
