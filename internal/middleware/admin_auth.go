package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ContextKeyAdminSubject = "admin_subject"

var errInvalidToken = errors.New("invalid token")

// AdminClaims are the claims an operator token must carry.
type AdminClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// AdminAuth requires an HS256 Bearer token signed with secret whose
// is_admin claim is true. An empty secret rejects every request.
func AdminAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if len(key) == 0 {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{Error: "admin access is not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or malformed authorization header"})
			return
		}

		claims, err := parseAdminToken(strings.TrimSpace(parts[1]), key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid token", Details: err.Error()})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "admin access required"})
			return
		}

		c.Set(ContextKeyAdminSubject, claims.Subject)
		c.Next()
	}
}

func parseAdminToken(tokenString string, key []byte) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}
