package store

import (
	"fmt"
	"strconv"
)

// PositionalArgs orders query parameters keyed "1", "2", ... into driver
// arguments. Any other key, or a gap in the numbering, is an error.
func PositionalArgs(params map[string]any) ([]any, error) {
	args := make([]any, len(params))
	for key, val := range params {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(params) {
			return nil, fmt.Errorf("invalid param %q: expected positions 1..%d", key, len(params))
		}
		args[n-1] = val
	}
	return args, nil
}
