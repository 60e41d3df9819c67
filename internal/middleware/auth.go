package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// PrincipalClaims are the JWT claims issued by the external auth layer. The subject holds the
// principal id.
type PrincipalClaims struct {
	Role          string `json:"role"`
	BranchID      int64  `json:"branch_id"`
	IsAdminBranch bool   `json:"is_admin_branch"`
	CustomerID    *int64 `json:"customer_id,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts the claims into the principal the services act for.
func (c *PrincipalClaims) Principal() (domain.Principal, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Principal{}, errors.New("subject is not a principal id")
	}
	return domain.Principal{
		ID:            id,
		Role:          c.Role,
		BranchID:      c.BranchID,
		IsAdminBranch: c.IsAdminBranch,
		CustomerID:    c.CustomerID,
	}, nil
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &PrincipalClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		if !token.Valid {
			logger.Warn("Token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		principal, err := claims.Principal()
		if err != nil {
			logger.Error("Principal missing from valid token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		enrichedLogger := logger.With(
			slog.Int64("principal_id", principal.ID),
			slog.Int64("branch_id", principal.BranchID),
		)

		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(principalKey), principal)
		c.Set(string(loggerCtxKey), enrichedLogger)

		c.Next()
	}
}
