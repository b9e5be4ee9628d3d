package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// Invoice represents an invoice in the service layer.
type Invoice struct {
	ID         uuid.UUID
	Number     string
	ClientID   string
	ClientName string
	Total      decimal.Decimal
	Status     string
	IssueDate  time.Time
	DueDate    time.Time
}

// InvoiceCreate carries the fields for a new invoice. The number is assigned
// by the company counter, never by the caller.
type InvoiceCreate struct {
	ClientID   string
	ClientName string
	Total      decimal.Decimal
	Status     string
	IssueDate  time.Time
	DueDate    time.Time
}

func validInvoiceStatus(status string) bool {
	switch finance.InvoiceStatus(status) {
	case finance.InvoiceDraft, finance.InvoiceSent, finance.InvoicePaid, finance.InvoiceOverdue:
		return true
	}
	return false
}

func invoiceFromStorage(row *storage.Invoice) Invoice {
	return Invoice{
		ID:         row.ID,
		Number:     row.Number,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		Total:      row.Total,
		Status:     row.Status,
		IssueDate:  row.IssueDate,
		DueDate:    row.DueDate,
	}
}
