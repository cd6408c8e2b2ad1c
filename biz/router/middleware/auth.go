package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	gojwt "github.com/golang-jwt/jwt/v4"
)

type authError struct {
	Message string `json:"message"`
}

// Protected verifies the HS256 bearer token the bot host sends on every
// webhook call. An empty secret rejects everything; a reachable but
// unauthenticated control surface over a server panel is not an option.
func Protected(secret string) []app.HandlerFunc {
	return []app.HandlerFunc{
		func(ctx context.Context, c *app.RequestContext) {
			auth := string(c.GetHeader("Authorization"))
			token := strings.TrimPrefix(auth, "Bearer ")
			if secret == "" || token == "" || token == auth {
				c.AbortWithStatusJSON(consts.StatusUnauthorized, authError{Message: "unauthorized"})
				return
			}

			parsed, err := gojwt.Parse(token, func(t *gojwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !parsed.Valid {
				c.AbortWithStatusJSON(consts.StatusUnauthorized, authError{Message: "unauthorized"})
				return
			}
			c.Next(ctx)
		},
	}
}
