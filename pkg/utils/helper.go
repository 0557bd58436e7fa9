package utils

import (
	"strconv"
)

// ParseInt64 converts a path parameter to int64. Returns an error for
// anything that is not a positive integer.
func ParseInt64(value string) (int64, error) {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}

	if result < 1 {
		return 0, strconv.ErrRange
	}

	return result, nil
}
