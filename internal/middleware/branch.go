package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// BranchHeader carries the optional branch override of a request.
const BranchHeader = "X-Branch-ID"

// BranchOverride parses the branch override header. Missing, non-numeric or non-positive values
// leave the request without an override; only admin-branch principals ever honour it.
func BranchOverride() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := ParseBranchHeader(c.GetHeader(BranchHeader)); ok {
			c.Set(string(branchOverride), id)
		}
		c.Next()
	}
}

// ParseBranchHeader parses a raw header value.
func ParseBranchHeader(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetBranchOverride returns the parsed override, nil when the request has none.
func GetBranchOverride(c *gin.Context) *int64 {
	v, exists := c.Get(string(branchOverride))
	if !exists {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}
