package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/service"
)

// RegisterBody is the request body for registration.
type RegisterBody struct {
	Email     string `json:"email" required:"true" format:"email" doc:"Login email"`
	Password  string `json:"password" required:"true" minLength:"8" doc:"Password, at least 8 characters"`
	FirstName string `json:"firstName" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
}

// RegisterInput is the Huma input for registration.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registration.
type RegisterOutput struct {
	Status int
	Body   Session
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	svc authService
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc authService) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register",
		Description:   "Creates a user account and returns a session.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	session, err := h.svc.Register(ctx, service.RegisterInput{
		Email:     input.Body.Email,
		Password:  input.Body.Password,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body:   sessionFromService(session),
	}, nil
}
