package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/simeongugl4-design/workforce-hub-png/internal/auth/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		// Roles ride in the token so every request can resolve its
		// primary role without a round trip to the role store.
		labels := make([]string, 0, 4)
		if raw, ok := claims["roles"].([]interface{}); ok {
			for _, v := range raw {
				if s, ok := v.(string); ok {
					labels = append(labels, s)
				}
			}
		}

		roles, err := role.ParseAll(labels)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Unknown role in token", nil)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("roles", role.Strings(roles))
		c.Set("primary_role", string(role.ResolvePrimary(roles)))

		c.Next()
	}
}
