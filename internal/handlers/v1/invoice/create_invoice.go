package invoice

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

// CreateInvoiceBody is the request body for creating an invoice. The number
// is assigned server side from the company counter.
type CreateInvoiceBody struct {
	ClientID   string `json:"clientID,omitempty" doc:"Client identifier"`
	ClientName string `json:"clientName" required:"true" minLength:"1" doc:"Client name"`
	Total      string `json:"total" required:"true" doc:"Decimal amount"`
	Status     string `json:"status,omitempty" enum:"draft,sent,paid,overdue" doc:"Initial status, defaults to draft"`
	IssueDate  string `json:"issueDate,omitempty" format:"date-time" doc:"RFC3339 issue date, defaults to now"`
	DueDate    string `json:"dueDate,omitempty" format:"date-time" doc:"RFC3339 due date"`
}

// CreateInvoiceInput is the Huma input for creating an invoice.
type CreateInvoiceInput struct {
	Body CreateInvoiceBody
}

// CreateInvoiceOutput is the Huma output for creating an invoice.
type CreateInvoiceOutput struct {
	Status int
	Body   Invoice
}

// CreateInvoiceHandler handles POST /v1/invoices.
type CreateInvoiceHandler struct {
	svc invoiceService
}

// NewCreateInvoiceHandler creates a new CreateInvoiceHandler.
func NewCreateInvoiceHandler(svc invoiceService) *CreateInvoiceHandler {
	return &CreateInvoiceHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-invoice",
		Method:        http.MethodPost,
		Path:          "/v1/invoices",
		Summary:       "Create invoice",
		Description:   "Numbers and stores a new invoice.",
		Tags:          []string{"Invoices"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateInvoiceHandler) handle(ctx context.Context, input *CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(input.Body.Total)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid total", err)
	}

	issueDate := time.Now().UTC()
	if input.Body.IssueDate != "" {
		issueDate, err = time.Parse(time.RFC3339, input.Body.IssueDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid issueDate", err)
		}
	}
	var dueDate time.Time
	if input.Body.DueDate != "" {
		dueDate, err = time.Parse(time.RFC3339, input.Body.DueDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
		}
	}

	invoice, err := h.svc.Create(ctx, companyID, service.InvoiceCreate{
		ClientID:   input.Body.ClientID,
		ClientName: input.Body.ClientName,
		Total:      total,
		Status:     input.Body.Status,
		IssueDate:  issueDate,
		DueDate:    dueDate,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &CreateInvoiceOutput{
		Status: http.StatusCreated,
		Body:   invoiceFromService(*invoice),
	}, nil
}
