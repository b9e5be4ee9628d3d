package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
)

// LoginBody is the request body for login.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Login email"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for login.
type LoginOutput struct {
	Body Session
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	svc authService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authService) *LoginHandler {
	return &LoginHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Login",
		Description: "Validates credentials and returns a session.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	session, err := h.svc.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &LoginOutput{Body: sessionFromService(session)}, nil
}
