package contract

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

// CreateContractBody is the request body for creating a contract.
type CreateContractBody struct {
	Number      string `json:"number" required:"true" minLength:"1" doc:"Contract number"`
	Title       string `json:"title" doc:"Contract title"`
	ClientName  string `json:"clientName" doc:"Client name"`
	Type        string `json:"type" doc:"Contract type"`
	Status      string `json:"status,omitempty" enum:"draft,active,completed,terminated" doc:"Initial status, defaults to draft"`
	Value       string `json:"value" doc:"Decimal amount"`
	Currency    string `json:"currency" doc:"Currency code, defaults to RON"`
	StartDate   string `json:"startDate" format:"date-time" doc:"RFC3339 start date"`
	EndDate     string `json:"endDate" format:"date-time" doc:"RFC3339 end date"`
	Description string `json:"description" doc:"Free text"`
}

// CreateContractInput is the Huma input for creating a contract.
type CreateContractInput struct {
	Body CreateContractBody
}

// CreateContractOutput is the Huma output for creating a contract.
type CreateContractOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"Contract UUID"`
	}
}

// CreateContractHandler handles POST /v1/contracts.
type CreateContractHandler struct {
	svc contractService
}

// NewCreateContractHandler creates a new CreateContractHandler.
func NewCreateContractHandler(svc contractService) *CreateContractHandler {
	return &CreateContractHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateContractHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-contract",
		Method:        http.MethodPost,
		Path:          "/v1/contracts",
		Summary:       "Create contract",
		Description:   "Stores a new contract.",
		Tags:          []string{"Contracts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateContractHandler) handle(ctx context.Context, input *CreateContractInput) (*CreateContractOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	value := decimal.Zero
	if input.Body.Value != "" {
		var err error
		value, err = decimal.NewFromString(input.Body.Value)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid value", err)
		}
	}

	var startDate, endDate *time.Time
	if input.Body.StartDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.Body.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		startDate = &parsed
	}
	if input.Body.EndDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.Body.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		endDate = &parsed
	}

	id, err := h.svc.Create(ctx, companyID, service.ContractCreate{
		Number:      input.Body.Number,
		Title:       input.Body.Title,
		ClientName:  input.Body.ClientName,
		Type:        input.Body.Type,
		Status:      input.Body.Status,
		Value:       value,
		Currency:    input.Body.Currency,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &CreateContractOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}
