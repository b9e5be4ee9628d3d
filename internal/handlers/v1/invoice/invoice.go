package invoice

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/service"
)

// invoiceService is the service surface the invoice handlers need.
type invoiceService interface {
	Create(ctx context.Context, companyID uuid.UUID, input service.InvoiceCreate) (*service.Invoice, error)
	Get(ctx context.Context, companyID, id uuid.UUID) (*service.Invoice, error)
	List(ctx context.Context, companyID uuid.UUID) ([]service.Invoice, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error
}

// Invoice is the API response model for an invoice.
type Invoice struct {
	ID         string `json:"id" doc:"Invoice UUID"`
	Number     string `json:"number" doc:"Assigned invoice number"`
	ClientID   string `json:"clientID,omitempty"`
	ClientName string `json:"clientName"`
	Total      string `json:"total" doc:"Decimal amount"`
	Status     string `json:"status" enum:"draft,sent,paid,overdue"`
	IssueDate  string `json:"issueDate" doc:"RFC3339 issue date"`
	DueDate    string `json:"dueDate,omitempty" doc:"RFC3339 due date"`
}

func invoiceFromService(inv service.Invoice) Invoice {
	out := Invoice{
		ID:         inv.ID.String(),
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		ClientName: inv.ClientName,
		Total:      inv.Total.String(),
		Status:     inv.Status,
		IssueDate:  inv.IssueDate.Format(time.RFC3339),
	}
	if !inv.DueDate.IsZero() {
		out.DueDate = inv.DueDate.Format(time.RFC3339)
	}
	return out
}
