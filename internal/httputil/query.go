package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIntQuery parses an optional integer query parameter bounded by [lo, hi].
// A missing or empty parameter yields def.
func ParseIntQuery(c *gin.Context, key string, def, lo, hi int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < lo || value > hi {
		return 0, fmt.Errorf("invalid %s parameter: must be an integer between %d and %d", key, lo, hi)
	}
	return value, nil
}
