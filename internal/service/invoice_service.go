package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// InvoiceService handles invoice business logic.
type InvoiceService struct {
	storage *storage.Storage
	op      Processor
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(store *storage.Storage, op Processor) *InvoiceService {
	return &InvoiceService{storage: store, op: op}
}

// Create numbers and stores a new invoice.
func (s *InvoiceService) Create(ctx context.Context, companyID uuid.UUID, input InvoiceCreate) (*Invoice, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, &finance.ValidationError{Field: "clientName", Reason: "required"}
	}
	if input.Total.IsNegative() {
		return nil, &finance.ValidationError{Field: "total", Reason: "must not be negative"}
	}
	if input.Status != "" && !validInvoiceStatus(input.Status) {
		return nil, &finance.ValidationError{Field: "status", Reason: "unknown status"}
	}

	action := &actions.CreateInvoice{
		Company:    companyID,
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		Total:      input.Total,
		Status:     input.Status,
		IssueDate:  input.IssueDate,
		DueDate:    input.DueDate,
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	invoice := invoiceFromStorage(action.Result)
	return &invoice, nil
}

// Get retrieves an invoice.
func (s *InvoiceService) Get(ctx context.Context, companyID, id uuid.UUID) (*Invoice, error) {
	row, err := s.storage.Invoices.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &finance.NotFoundError{Entity: "invoice", ID: id.String()}
	}
	invoice := invoiceFromStorage(row)
	return &invoice, nil
}

// List returns the company's invoices, newest first.
func (s *InvoiceService) List(ctx context.Context, companyID uuid.UUID) ([]Invoice, error) {
	rows, err := s.storage.Invoices.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	invoices := make([]Invoice, len(rows))
	for i, row := range rows {
		invoices[i] = invoiceFromStorage(row)
	}
	return invoices, nil
}

// SetStatus moves an invoice through its lifecycle.
func (s *InvoiceService) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	if !validInvoiceStatus(status) {
		return &finance.ValidationError{Field: "status", Reason: "unknown status"}
	}
	return s.op.Process(ctx, &actions.SetInvoiceStatus{
		Company:   companyID,
		InvoiceID: id,
		Status:    status,
	})
}
