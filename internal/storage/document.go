package storage

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Document statuses. A document stuck in an analyzer failure must end up in
// StatusError, never remain processing.
const (
	DocStatusProcessing = "processing"
	DocStatusCompleted  = "completed"
	DocStatusError      = "error"
)

type Document struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID        uuid.UUID `gorm:"type:uuid"`
	FileName      string    `gorm:"not null"`
	FileSize      string
	FileType      string
	FileData      string `gorm:"type:text"` // base64 payload
	Category      string
	Status        string `gorm:"size:16;default:processing"`
	Confidence    float64
	Supplier      string
	AmountText    string // free text as extracted, parsed downstream
	Client        string
	DocumentDate  string
	InvoiceNumber string
	CUI           string
	Description   string
	Insights      []string `gorm:"serializer:json"`
	Recommendations []string `gorm:"serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DocumentTransaction is a transaction generated from a document's AI
// analysis. It lives and dies with its document.
type DocumentTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Description string
	Amount      decimal.Decimal `gorm:"type:decimal(20,4)"`
	Type        string          `gorm:"size:16"`
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}

// DocumentAnalysisUpdate carries the fields written after the AI collaborator
// returns. Transactions replace the document's previous generated set.
type DocumentAnalysisUpdate struct {
	Category        string
	Status          string
	Confidence      float64
	Supplier        string
	AmountText      string
	Client          string
	DocumentDate    string
	InvoiceNumber   string
	CUI             string
	Description     string
	Insights        []string
	Recommendations []string
	Transactions    []DocumentTransaction
}

type IDocumentTable interface {
	Insert(ctx context.Context, doc *Document) (uuid.UUID, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Document, error)
	List(ctx context.Context, companyID uuid.UUID) ([]*Document, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) (bool, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error
	ApplyAnalysis(ctx context.Context, companyID, id uuid.UUID, update *DocumentAnalysisUpdate) error
	ListTransactions(ctx context.Context, companyID uuid.UUID) ([]*DocumentTransaction, error)
	FindTransaction(ctx context.Context, companyID, id uuid.UUID) (*DocumentTransaction, error)
}

var _ IDocumentTable = (*DocumentsTable)(nil)

type DocumentsTable struct {
	db *gorm.DB
}

func (t *DocumentsTable) Insert(ctx context.Context, doc *Document) (uuid.UUID, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.Must(uuid.NewV4())
	}
	if doc.Status == "" {
		doc.Status = DocStatusProcessing
	}
	if err := t.db.WithContext(ctx).Create(doc).Error; err != nil {
		return uuid.Nil, err
	}
	return doc.ID, nil
}

func (t *DocumentsTable) FindByID(ctx context.Context, companyID, id uuid.UUID) (*Document, error) {
	var doc Document
	err := t.db.WithContext(ctx).
		First(&doc, "id = ? AND company_id = ?", id, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (t *DocumentsTable) List(ctx context.Context, companyID uuid.UUID) ([]*Document, error) {
	var docs []*Document
	err := t.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (t *DocumentsTable) Delete(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	res := t.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&Document{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	err := t.db.WithContext(ctx).
		Where("document_id = ?", id).
		Delete(&DocumentTransaction{}).Error
	return true, err
}

func (t *DocumentsTable) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	return t.db.WithContext(ctx).Model(&Document{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("status", status).Error
}

func (t *DocumentsTable) ApplyAnalysis(ctx context.Context, companyID, id uuid.UUID, update *DocumentAnalysisUpdate) error {
	var doc Document
	err := t.db.WithContext(ctx).
		First(&doc, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return err
	}

	doc.Category = update.Category
	doc.Status = update.Status
	doc.Confidence = update.Confidence
	doc.Supplier = update.Supplier
	doc.AmountText = update.AmountText
	doc.Client = update.Client
	doc.DocumentDate = update.DocumentDate
	doc.InvoiceNumber = update.InvoiceNumber
	doc.CUI = update.CUI
	doc.Description = update.Description
	doc.Insights = update.Insights
	doc.Recommendations = update.Recommendations
	if err := t.db.WithContext(ctx).Save(&doc).Error; err != nil {
		return err
	}

	if err := t.db.WithContext(ctx).
		Where("document_id = ?", id).
		Delete(&DocumentTransaction{}).Error; err != nil {
		return err
	}
	for i := range update.Transactions {
		tx := &update.Transactions[i]
		tx.DocumentID = id
		tx.CompanyID = companyID
		if tx.ID == uuid.Nil {
			tx.ID = uuid.Must(uuid.NewV4())
		}
		if err := t.db.WithContext(ctx).Create(tx).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *DocumentsTable) FindTransaction(ctx context.Context, companyID, id uuid.UUID) (*DocumentTransaction, error) {
	var tx DocumentTransaction
	err := t.db.WithContext(ctx).
		First(&tx, "id = ? AND company_id = ?", id, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (t *DocumentsTable) ListTransactions(ctx context.Context, companyID uuid.UUID) ([]*DocumentTransaction, error) {
	var txs []*DocumentTransaction
	err := t.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("date ASC").
		Find(&txs).Error
	return txs, err
}
