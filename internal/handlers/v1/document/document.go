package document

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/service"
)

// documentService is the service surface the document handlers need.
type documentService interface {
	Upload(ctx context.Context, companyID, userID uuid.UUID, input service.DocumentUpload) (uuid.UUID, error)
	Process(ctx context.Context, companyID, documentID uuid.UUID) error
	Get(ctx context.Context, companyID, id uuid.UUID) (*service.Document, error)
	List(ctx context.Context, companyID uuid.UUID) ([]service.Document, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	Transactions(ctx context.Context, companyID uuid.UUID) ([]service.DocumentTransaction, error)
}

// Document is the API response model for a document.
type Document struct {
	ID              string   `json:"id" doc:"Document UUID"`
	FileName        string   `json:"fileName"`
	FileSize        string   `json:"fileSize,omitempty"`
	FileType        string   `json:"fileType,omitempty"`
	Category        string   `json:"category,omitempty"`
	Status          string   `json:"status" enum:"processing,completed,error"`
	Confidence      float64  `json:"confidence,omitempty"`
	Supplier        string   `json:"supplier,omitempty"`
	Amount          string   `json:"amount,omitempty"`
	Client          string   `json:"client,omitempty"`
	DocumentDate    string   `json:"documentDate,omitempty"`
	InvoiceNumber   string   `json:"invoiceNumber,omitempty"`
	CUI             string   `json:"cui,omitempty"`
	Description     string   `json:"description,omitempty"`
	Insights        []string `json:"insights,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	CreatedAt       string   `json:"createdAt" doc:"RFC3339 upload time"`
}

// Transaction is the API response model for a generated transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	DocumentID  string `json:"documentID" doc:"Source document UUID"`
	Description string `json:"description"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Type        string `json:"type" enum:"income,expense"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
}

func documentFromService(doc service.Document) Document {
	return Document{
		ID:              doc.ID.String(),
		FileName:        doc.FileName,
		FileSize:        doc.FileSize,
		FileType:        doc.FileType,
		Category:        doc.Category,
		Status:          doc.Status,
		Confidence:      doc.Confidence,
		Supplier:        doc.Supplier,
		Amount:          doc.Amount,
		Client:          doc.Client,
		DocumentDate:    doc.DocumentDate,
		InvoiceNumber:   doc.InvoiceNumber,
		CUI:             doc.CUI,
		Description:     doc.Description,
		Insights:        doc.Insights,
		Recommendations: doc.Recommendations,
		CreatedAt:       doc.CreatedAt.Format(time.RFC3339),
	}
}

func transactionFromService(tx service.DocumentTransaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		DocumentID:  tx.DocumentID.String(),
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Type:        tx.Type,
		Category:    tx.Category,
		Date:        tx.Date.Format(time.RFC3339),
	}
}
