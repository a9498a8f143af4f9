package middleware

import (
	"net/http"
	"strings"

	"metalshop/internal/infrastructure/auth"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextUserRole = "user_role"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// TokenValidator is satisfied by *auth.TokenManager.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// Auth rejects requests without a valid bearer token. The authenticated user
// becomes the actor of every mutation made while serving the request.
func Auth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromGin(c)

		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if header == "" || !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			log.Warn("[auth][middleware] missing or malformed authorization header")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			log.Warn("[auth][middleware] invalid token", zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextUserRole, claims.Role)

		userLog := log.With(zap.String("user_id", claims.UserID))
		ctx := usecase.ContextWithActor(c.Request.Context(), usecase.Actor{UserID: claims.UserID, Username: claims.Username})
		ctx = logger.WithContext(ctx, userLog)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
