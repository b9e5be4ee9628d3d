package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/auth"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	companyIDKey contextKey = "companyID"
)

// Auth returns a huma middleware that validates the bearer token and puts
// the user and company ids on the request context. Paths in public skip the
// check.
func Auth(api huma.API, secret string, public map[string]bool) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if public[ctx.Operation().Path] {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token")
			return
		}

		userID, err := uuid.FromString(claims.UserID)
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token subject")
			return
		}
		ctx = huma.WithValue(ctx, userIDKey, userID)

		if claims.CompanyID != "" {
			companyID, err := uuid.FromString(claims.CompanyID)
			if err != nil {
				huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token company")
				return
			}
			ctx = huma.WithValue(ctx, companyIDKey, companyID)
		}

		next(ctx)
	}
}

// UserID returns the authenticated user's id, or uuid.Nil outside an
// authenticated request.
func UserID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(userIDKey).(uuid.UUID)
	return id
}

// CompanyID returns the authenticated user's company id, or uuid.Nil when
// the user has not finished company setup.
func CompanyID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(companyIDKey).(uuid.UUID)
	return id
}

// WithIdentity stamps the ids directly onto a context; test helper for
// handler tests that bypass the middleware.
func WithIdentity(ctx context.Context, userID, companyID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, companyIDKey, companyID)
}
