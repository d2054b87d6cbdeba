package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/agenda-pro/internal/config"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
)

const ContextActor = "actor"

// ActorResolver transforma o usuário do token no ator da requisição.
type ActorResolver interface {
	Resolve(ctx context.Context, userID uint) (actor.Actor, error)
}

func AuthMiddleware(cfg *config.Config, resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token_claims"})
			return
		}

		userID, ok := subjectID(claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token_payload"})
			return
		}

		// o papel vem do banco, não do token
		a, err := resolver.Resolve(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "user_not_found"})
			return
		}

		c.Set(ContextActor, a)
		c.Request = c.Request.WithContext(actor.WithActor(c.Request.Context(), a))

		c.Next()
	}
}

// subjectID aceita "sub" numérico ou string numérica.
func subjectID(claims jwt.MapClaims) (uint, bool) {
	switch v := claims["sub"].(type) {
	case float64:
		if v <= 0 {
			return 0, false
		}
		return uint(v), true
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}

// ActorFrom devolve o ator colocado pelo AuthMiddleware.
func ActorFrom(c *gin.Context) (actor.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return nil, false
	}
	a, ok := v.(actor.Actor)
	return a, ok
}
