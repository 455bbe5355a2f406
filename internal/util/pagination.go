package util

import "strconv"

// DefaultLimit matches the store contract: limit defaults to 100 and no upper
// bound is enforced.
const DefaultLimit = 100

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func Window(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return offset, limit
}
