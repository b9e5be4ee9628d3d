package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// Document represents a document in the service layer.
type Document struct {
	ID              uuid.UUID
	FileName        string
	FileSize        string
	FileType        string
	Category        string
	Status          string
	Confidence      float64
	Supplier        string
	Amount          string
	Client          string
	DocumentDate    string
	InvoiceNumber   string
	CUI             string
	Description     string
	Insights        []string
	Recommendations []string
	CreatedAt       time.Time
}

// DocumentUpload carries an uploaded file. FileData is base64.
type DocumentUpload struct {
	FileName string
	FileSize string
	FileType string
	FileData string
	Category string
}

// DocumentTransaction is a generated transaction in the service layer.
type DocumentTransaction struct {
	ID          uuid.UUID
	DocumentID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
	Date        time.Time
}

func documentFromStorage(row *storage.Document) Document {
	return Document{
		ID:              row.ID,
		FileName:        row.FileName,
		FileSize:        row.FileSize,
		FileType:        row.FileType,
		Category:        row.Category,
		Status:          row.Status,
		Confidence:      row.Confidence,
		Supplier:        row.Supplier,
		Amount:          row.AmountText,
		Client:          row.Client,
		DocumentDate:    row.DocumentDate,
		InvoiceNumber:   row.InvoiceNumber,
		CUI:             row.CUI,
		Description:     row.Description,
		Insights:        row.Insights,
		Recommendations: row.Recommendations,
		CreatedAt:       row.CreatedAt,
	}
}

func documentTransactionFromStorage(row *storage.DocumentTransaction) DocumentTransaction {
	return DocumentTransaction{
		ID:          row.ID,
		DocumentID:  row.DocumentID,
		Description: row.Description,
		Amount:      row.Amount,
		Type:        row.Type,
		Category:    row.Category,
		Date:        row.Date,
	}
}
