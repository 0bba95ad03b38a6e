package auth

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the acting user id when no bearer token supplies one
const UserIDHeader = "X-User-ID"

// AuthMiddleware resolves the acting user of each request
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware. A nil service
// disables token validation and only the X-User-ID header is honoured.
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// ResolveActor never rejects a request. It stores the bearer token, the
// validated token's user id or else the X-User-ID header value in the
// request context. A bearer token that fails validation leaves the request
// without actor or token. Handlers that need an actor enforce it themselves.
func (m *AuthMiddleware) ResolveActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var actor uint
		rejected := false

		authHeader := c.GetHeader("Authorization")
		if tokenString := strings.TrimPrefix(authHeader, "Bearer "); tokenString != authHeader && tokenString != "" {
			if m.service == nil {
				ctx = WithToken(ctx, tokenString)
			} else if claims, err := m.service.ValidateJWT(tokenString); err == nil {
				ctx = WithToken(ctx, tokenString)
				actor = claims.UserID
				c.Set("auth_claims", claims)
			} else {
				rejected = true
			}
		}

		if actor == 0 && !rejected {
			if raw := strings.TrimSpace(c.GetHeader(UserIDHeader)); raw != "" {
				if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
					actor = uint(id)
				}
			}
		}

		if actor != 0 {
			ctx = WithActor(ctx, actor)
			c.Set("user_id", actor)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetActor is a helper function to extract the acting user id from the request
func GetActor(c *gin.Context) (uint, bool) {
	return ActorFromContext(c.Request.Context())
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
