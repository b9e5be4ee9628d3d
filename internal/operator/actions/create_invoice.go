package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// CreateInvoice assigns the next invoice number from the company's counter
// and stores the invoice. Running on the company's worker makes the
// read-bump-insert sequence race free.
type CreateInvoice struct {
	Company    uuid.UUID
	ClientID   string
	ClientName string
	Total      decimal.Decimal
	Status     string
	IssueDate  time.Time
	DueDate    time.Time

	Result *storage.Invoice

	IAction
}

func (c *CreateInvoice) CompanyID() uuid.UUID { return c.Company }

func (c *CreateInvoice) Perform(ctx context.Context, writer *storage.Writer) error {
	company, err := writer.Companies.FindByID(ctx, c.Company)
	if err != nil {
		return err
	}
	if company == nil {
		return &finance.NotFoundError{Entity: "company", ID: c.Company.String()}
	}

	counter, err := writer.Companies.IncrementInvoiceCounter(ctx, c.Company)
	if err != nil {
		return err
	}

	status := c.Status
	if status == "" {
		status = string(finance.InvoiceDraft)
	}

	invoice := &storage.Invoice{
		CompanyID:  c.Company,
		Number:     fmt.Sprintf("%s-%04d", company.InvoicePrefix, counter),
		ClientID:   c.ClientID,
		ClientName: c.ClientName,
		Total:      c.Total,
		Status:     status,
		IssueDate:  c.IssueDate,
		DueDate:    c.DueDate,
	}
	if _, err := writer.Invoices.Insert(ctx, invoice); err != nil {
		return err
	}

	c.Result = invoice
	return nil
}
