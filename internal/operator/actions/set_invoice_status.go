package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

type SetInvoiceStatus struct {
	Company   uuid.UUID
	InvoiceID uuid.UUID
	Status    string

	IAction
}

func (s *SetInvoiceStatus) CompanyID() uuid.UUID { return s.Company }

func (s *SetInvoiceStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	invoice, err := writer.Invoices.FindByID(ctx, s.Company, s.InvoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return &finance.NotFoundError{Entity: "invoice", ID: s.InvoiceID.String()}
	}

	return writer.Invoices.SetStatus(ctx, s.Company, s.InvoiceID, s.Status)
}
