package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/ecks6/ContaAI2/internal/analysis"
	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// DocumentService handles document upload, analysis and lifecycle.
type DocumentService struct {
	storage  *storage.Storage
	op       Processor
	analyzer analysis.Analyzer
	log      *logrus.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store *storage.Storage, op Processor, analyzer analysis.Analyzer, log *logrus.Logger) *DocumentService {
	return &DocumentService{storage: store, op: op, analyzer: analyzer, log: log}
}

// Upload stores the document in the processing state. Analysis runs
// separately through Process.
func (s *DocumentService) Upload(ctx context.Context, companyID, userID uuid.UUID, input DocumentUpload) (uuid.UUID, error) {
	if input.FileName == "" {
		return uuid.Nil, &finance.ValidationError{Field: "fileName", Reason: "required"}
	}
	if input.FileData == "" {
		return uuid.Nil, &finance.ValidationError{Field: "fileData", Reason: "required"}
	}
	if _, err := base64.StdEncoding.DecodeString(input.FileData); err != nil {
		return uuid.Nil, &finance.ValidationError{Field: "fileData", Reason: "not valid base64"}
	}

	action := &actions.CreateDocument{
		Company: companyID,
		Document: &storage.Document{
			UserID:   userID,
			FileName: input.FileName,
			FileSize: input.FileSize,
			FileType: input.FileType,
			FileData: input.FileData,
			Category: input.Category,
			Status:   storage.DocStatusProcessing,
		},
	}
	if err := s.op.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// Process runs the analyzer over one uploaded document and applies the
// verdict. An analyzer failure parks the document in the error state and is
// returned for logging; it never takes other documents down with it.
func (s *DocumentService) Process(ctx context.Context, companyID, documentID uuid.UUID) error {
	doc, err := s.storage.Documents.FindByID(ctx, companyID, documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return &finance.NotFoundError{Entity: "document", ID: documentID.String()}
	}

	data, err := base64.StdEncoding.DecodeString(doc.FileData)
	if err != nil {
		return s.fail(ctx, companyID, documentID, fmt.Errorf("decode file data: %w", err))
	}

	result, err := s.analyzer.AnalyzeDocument(ctx, doc.FileType, data)
	if err != nil {
		return s.fail(ctx, companyID, documentID, err)
	}

	tx, warnings := finance.TransactionFromAnalysis(finance.AnalysisFields{
		Description:  result.Description,
		Amount:       result.Amount,
		Category:     result.Category,
		DocumentDate: result.DocumentDate,
	}, documentID.String(), doc.CreatedAt)
	// The record is kept on parse fallbacks; the warnings are the only trace.
	for _, w := range warnings {
		s.log.WithFields(logrus.Fields{
			"documentID": documentID,
			"field":      w.Field,
			"value":      w.Value,
			"reason":     w.Reason,
		}).Warn("DocumentService.Process.DataQualityWarning")
	}

	update := &storage.DocumentAnalysisUpdate{
		Category:        result.Category,
		Status:          storage.DocStatusCompleted,
		Confidence:      result.Confidence,
		Supplier:        result.Supplier,
		AmountText:      result.Amount,
		Client:          result.Client,
		DocumentDate:    result.DocumentDate,
		InvoiceNumber:   result.InvoiceNumber,
		CUI:             result.CUI,
		Description:     result.Description,
		Insights:        result.Insights,
		Recommendations: result.Recommendations,
		Transactions: []storage.DocumentTransaction{
			{
				Description: tx.Description,
				Amount:      tx.Amount,
				Type:        string(tx.Type),
				Category:    tx.Category,
				Date:        tx.Date,
			},
		},
	}

	return s.op.Process(ctx, &actions.ApplyAnalysis{
		Company:    companyID,
		DocumentID: documentID,
		Update:     update,
	})
}

func (s *DocumentService) fail(ctx context.Context, companyID, documentID uuid.UUID, cause error) error {
	statusErr := s.op.Process(ctx, &actions.SetDocumentStatus{
		Company:    companyID,
		DocumentID: documentID,
		Status:     storage.DocStatusError,
	})
	if statusErr != nil {
		return statusErr
	}
	return cause
}

// Get retrieves a document.
func (s *DocumentService) Get(ctx context.Context, companyID, id uuid.UUID) (*Document, error) {
	row, err := s.storage.Documents.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &finance.NotFoundError{Entity: "document", ID: id.String()}
	}
	doc := documentFromStorage(row)
	return &doc, nil
}

// List returns the company's documents, newest first.
func (s *DocumentService) List(ctx context.Context, companyID uuid.UUID) ([]Document, error) {
	rows, err := s.storage.Documents.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, len(rows))
	for i, row := range rows {
		docs[i] = documentFromStorage(row)
	}
	return docs, nil
}

// Delete removes a document and its generated transactions.
func (s *DocumentService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.op.Process(ctx, &actions.DeleteDocument{Company: companyID, DocumentID: id})
}

// Transactions returns the company's generated transactions, oldest first.
func (s *DocumentService) Transactions(ctx context.Context, companyID uuid.UUID) ([]DocumentTransaction, error) {
	rows, err := s.storage.Documents.ListTransactions(ctx, companyID)
	if err != nil {
		return nil, err
	}
	txs := make([]DocumentTransaction, len(rows))
	for i, row := range rows {
		txs[i] = documentTransactionFromStorage(row)
	}
	return txs, nil
}
