package middleware

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a custom type for keys stored in request and gin contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	principalKey   = contextKey("principal")
	branchOverride = contextKey("branchOverride")
)

// GetPrincipalFromContext retrieves the authenticated principal from the Gin context.
// It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	if v, exists := c.Get(string(principalKey)); exists {
		p, ok := v.(domain.Principal)
		return p, ok
	}
	// check in the request context as well
	return PrincipalFromCtx(c.Request.Context())
}

// PrincipalFromCtx retrieves the principal stored in a standard context.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
