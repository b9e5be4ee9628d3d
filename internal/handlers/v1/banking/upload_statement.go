package banking

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

// StatementLineBody is one raw line of an uploaded statement. Fields arrive
// as free text and are normalized on ingestion.
type StatementLineBody struct {
	Date         string `json:"date" doc:"Transaction date, many formats accepted"`
	Description  string `json:"description" doc:"Free text description"`
	Amount       string `json:"amount" doc:"Amount, locale formats accepted"`
	Balance      string `json:"balance" doc:"Balance after the transaction"`
	Type         string `json:"type" doc:"income or expense, inferred from the amount sign when absent"`
	Counterparty string `json:"counterparty" doc:"Counterparty name"`
	IBAN         string `json:"iban" doc:"Counterparty IBAN"`
}

// UploadStatementBody is the request body for uploading a statement.
type UploadStatementBody struct {
	FileName      string              `json:"fileName" required:"true" minLength:"1" doc:"Original file name"`
	FileSize      string              `json:"fileSize" doc:"Display file size"`
	BankName      string              `json:"bankName" doc:"Issuing bank"`
	AccountNumber string              `json:"accountNumber" doc:"Account IBAN"`
	Transactions  []StatementLineBody `json:"transactions" required:"true" minItems:"1" doc:"Raw statement lines"`
}

// UploadStatementInput is the Huma input for uploading a statement.
type UploadStatementInput struct {
	Body UploadStatementBody
}

// UploadStatementOutput is the Huma output for uploading a statement.
type UploadStatementOutput struct {
	Status int
	Body   struct {
		ID       string    `json:"id" doc:"Statement UUID"`
		Warnings []Warning `json:"warnings,omitempty" doc:"Data-quality flags for kept records"`
	}
}

// UploadStatementHandler handles POST /v1/banking/statements.
type UploadStatementHandler struct {
	svc bankingService
}

// NewUploadStatementHandler creates a new UploadStatementHandler.
func NewUploadStatementHandler(svc bankingService) *UploadStatementHandler {
	return &UploadStatementHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UploadStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "upload-statement",
		Method:        http.MethodPost,
		Path:          "/v1/banking/statements",
		Summary:       "Upload statement",
		Description:   "Normalizes and stores a bank statement with its transactions.",
		Tags:          []string{"Banking"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *UploadStatementHandler) handle(ctx context.Context, input *UploadStatementInput) (*UploadStatementOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	lines := make([]finance.StatementLine, len(input.Body.Transactions))
	for i, raw := range input.Body.Transactions {
		lines[i] = finance.StatementLine{
			Date:         raw.Date,
			Description:  raw.Description,
			Amount:       raw.Amount,
			Balance:      raw.Balance,
			Type:         raw.Type,
			Counterparty: raw.Counterparty,
			IBAN:         raw.IBAN,
		}
	}

	result, err := h.svc.Upload(ctx, companyID, middleware.UserID(ctx), service.StatementUpload{
		FileName:      input.Body.FileName,
		FileSize:      input.Body.FileSize,
		BankName:      input.Body.BankName,
		AccountNumber: input.Body.AccountNumber,
		Lines:         lines,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &UploadStatementOutput{Status: http.StatusCreated}
	out.Body.ID = result.ID.String()
	for _, w := range result.Warnings {
		out.Body.Warnings = append(out.Body.Warnings, Warning{
			Field:  w.Field,
			Value:  w.Value,
			Reason: w.Reason,
		})
	}
	return out, nil
}
