package pagination

import (
	"fmt"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseLimitOffset normalizes the raw limit/offset query parameters used by
// list endpoints. Empty values fall back to defaults; malformed or negative
// values are an error so callers can reject the request instead of silently
// serving the wrong page.
func ParseLimitOffset(rawLimit, rawOffset string) (limit, offset int, err error) {
	limit = DefaultLimit
	if rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil || limit <= 0 {
			return 0, 0, fmt.Errorf("invalid limit %q", rawLimit)
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
	}

	offset = 0
	if rawOffset != "" {
		offset, err = strconv.Atoi(rawOffset)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset %q", rawOffset)
		}
	}

	return limit, offset, nil
}
