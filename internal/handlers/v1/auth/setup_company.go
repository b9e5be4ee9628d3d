package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

// SetupCompanyBody is the request body for company setup.
type SetupCompanyBody struct {
	Name          string `json:"name" required:"true" minLength:"1" doc:"Company name"`
	CUI           string `json:"cui" required:"true" minLength:"1" doc:"Fiscal identifier"`
	RegCom        string `json:"regCom" doc:"Trade registry number"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	VATRate       int    `json:"vatRate" doc:"VAT percentage, defaults to 19"`
	Currency      string `json:"currency" doc:"Defaults to RON"`
	InvoicePrefix string `json:"invoicePrefix" doc:"Defaults to INV"`
}

// SetupCompanyInput is the Huma input for company setup.
type SetupCompanyInput struct {
	Body SetupCompanyBody
}

// SetupCompanyOutput is the Huma output for company setup. The session
// carries a re-issued token with the company claim.
type SetupCompanyOutput struct {
	Status int
	Body   Session
}

// SetupCompanyHandler handles POST /v1/auth/setup-company.
type SetupCompanyHandler struct {
	svc authService
}

// NewSetupCompanyHandler creates a new SetupCompanyHandler.
func NewSetupCompanyHandler(svc authService) *SetupCompanyHandler {
	return &SetupCompanyHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *SetupCompanyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "auth-setup-company",
		Method:        http.MethodPost,
		Path:          "/v1/auth/setup-company",
		Summary:       "Setup company",
		Description:   "Creates the tenant for a user without one and re-issues the token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SetupCompanyHandler) handle(ctx context.Context, input *SetupCompanyInput) (*SetupCompanyOutput, error) {
	session, err := h.svc.SetupCompany(ctx, middleware.UserID(ctx), service.CompanyInput{
		Name:          input.Body.Name,
		CUI:           input.Body.CUI,
		RegCom:        input.Body.RegCom,
		Address:       input.Body.Address,
		Phone:         input.Body.Phone,
		Email:         input.Body.Email,
		VATRate:       input.Body.VATRate,
		Currency:      input.Body.Currency,
		InvoicePrefix: input.Body.InvoicePrefix,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &SetupCompanyOutput{
		Status: http.StatusCreated,
		Body:   sessionFromService(session),
	}, nil
}
