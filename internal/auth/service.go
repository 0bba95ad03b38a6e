package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService validates bearer tokens issued for the API
type AuthService struct {
	secret []byte
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uint   `json:"user_id" example:"12345"`
	Username string `json:"username,omitempty" example:"johndoe"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new auth service signing and verifying with the given HS256 secret
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// GenerateJWT issues a token for the given user id
func (s *AuthService) GenerateJWT(userID uint, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "team-management-backend",
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.UserID == 0 {
			return nil, fmt.Errorf("token carries no user_id claim")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
