package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// MeInput is the Huma input for the profile endpoint.
type MeInput struct{}

// MeOutput is the Huma output for the profile endpoint.
type MeOutput struct {
	Body User
}

// MeHandler handles GET /v1/auth/me.
type MeHandler struct {
	svc authService
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(svc authService) *MeHandler {
	return &MeHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/v1/auth/me",
		Summary:     "Profile",
		Description: "Returns the authenticated user's profile.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *MeInput) (*MeOutput, error) {
	user, err := h.svc.Me(ctx, middleware.UserID(ctx))
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &MeOutput{Body: userFromService(*user)}, nil
}
