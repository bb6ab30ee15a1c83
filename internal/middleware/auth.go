package middleware

import (
	"strings"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/services"
)

const (
	SubjectIDKey = "subject_id"
	EmailKey     = "subject_email"
	RoleKey      = "subject_role"
)

func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(SubjectIDKey, claims.SubjectID)
		c.Set(EmailKey, claims.Email)
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}

// RequireRole gates a route group to a single role. Runs after Auth.
func RequireRole(role string) drift.HandlerFunc {
	return func(c *drift.Context) {
		if GetRole(c) != role {
			c.Forbidden("insufficient permissions")
			return
		}
		c.Next()
	}
}

func GetSubjectID(c *drift.Context) string {
	if id, ok := c.Get(SubjectIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func GetEmail(c *drift.Context) string {
	if email, ok := c.Get(EmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

func GetRole(c *drift.Context) string {
	if role, ok := c.Get(RoleKey); ok {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
