package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ecks6/ContaAI2/internal/analysis"
	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

func newDocumentTestService(t *testing.T) (*DocumentService, *storage.MockIDocumentTable, *MockProcessor, *MockAnalyzer) {
	t.Helper()
	mockTable := &storage.MockIDocumentTable{}
	mockOp := &MockProcessor{}
	mockAnalyzer := &MockAnalyzer{}
	store := &storage.Storage{Tables: storage.Tables{Documents: mockTable}}
	logger, _ := logrustest.NewNullLogger()
	svc := NewDocumentService(store, mockOp, mockAnalyzer, logger)
	return svc, mockTable, mockOp, mockAnalyzer
}

func storedDocument(companyID uuid.UUID) *storage.Document {
	return &storage.Document{
		ID:        uuid.Must(uuid.NewV4()),
		CompanyID: companyID,
		FileName:  "factura.pdf",
		FileType:  "application/pdf",
		FileData:  base64.StdEncoding.EncodeToString([]byte("pdf-bytes")),
		Status:    storage.DocStatusProcessing,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// -- Upload tests --

func TestUploadDocument_InvalidBase64(t *testing.T) {
	svc, _, mockOp, _ := newDocumentTestService(t)

	_, err := svc.Upload(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), DocumentUpload{
		FileName: "factura.pdf",
		FileData: "not base64!!!",
	})

	var verr *finance.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "fileData", verr.Field)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestUploadDocument_Success(t *testing.T) {
	svc, _, mockOp, _ := newDocumentTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())
	mockOp.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateDocument")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.CreateDocument)
			assert.Equal(t, companyID, action.Company)
			assert.Equal(t, storage.DocStatusProcessing, action.Document.Status)
			action.ID = docID
		}).Return(nil)

	id, err := svc.Upload(context.Background(), companyID, uuid.Must(uuid.NewV4()), DocumentUpload{
		FileName: "factura.pdf",
		FileData: base64.StdEncoding.EncodeToString([]byte("pdf-bytes")),
	})

	require.NoError(t, err)
	assert.Equal(t, docID, id)
}

// -- Process tests --

func TestProcessDocument_AnalyzerFailureParksDocument(t *testing.T) {
	svc, mockTable, mockOp, mockAnalyzer := newDocumentTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	doc := storedDocument(companyID)
	mockTable.On("FindByID", mock.Anything, companyID, doc.ID).Return(doc, nil)
	mockAnalyzer.On("AnalyzeDocument", mock.Anything, "application/pdf", []byte("pdf-bytes")).
		Return(nil, errors.New("model unavailable"))
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.SetDocumentStatus)
		return ok && action.Status == storage.DocStatusError
	})).Return(nil)

	err := svc.Process(context.Background(), companyID, doc.ID)

	assert.EqualError(t, err, "model unavailable")
	mockOp.AssertExpectations(t)
}

func TestProcessDocument_Success(t *testing.T) {
	svc, mockTable, mockOp, mockAnalyzer := newDocumentTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	doc := storedDocument(companyID)
	mockTable.On("FindByID", mock.Anything, companyID, doc.ID).Return(doc, nil)
	mockAnalyzer.On("AnalyzeDocument", mock.Anything, "application/pdf", []byte("pdf-bytes")).
		Return(&analysis.Result{
			Description:   "Factura servicii IT",
			Amount:        "1.234,56 RON",
			Category:      "servicii",
			DocumentDate:  "15.03.2024",
			InvoiceNumber: "INV-0042",
			Confidence:    0.93,
		}, nil)

	var update *storage.DocumentAnalysisUpdate
	mockOp.On("Process", mock.Anything, mock.AnythingOfType("*actions.ApplyAnalysis")).
		Run(func(args mock.Arguments) {
			update = args.Get(1).(*actions.ApplyAnalysis).Update
		}).Return(nil)

	err := svc.Process(context.Background(), companyID, doc.ID)

	require.NoError(t, err)
	require.NotNil(t, update)
	assert.Equal(t, storage.DocStatusCompleted, update.Status)
	require.Len(t, update.Transactions, 1)

	tx := update.Transactions[0]
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "income", tx.Type)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestProcessDocument_UnparsableFieldsKeepRecord(t *testing.T) {
	svc, mockTable, mockOp, mockAnalyzer := newDocumentTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	doc := storedDocument(companyID)
	mockTable.On("FindByID", mock.Anything, companyID, doc.ID).Return(doc, nil)
	mockAnalyzer.On("AnalyzeDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(&analysis.Result{
			Description:  "Bon fara suma",
			Amount:       "vezi anexa",
			Category:     "diverse",
			DocumentDate: "cândva în martie",
		}, nil)

	var update *storage.DocumentAnalysisUpdate
	mockOp.On("Process", mock.Anything, mock.AnythingOfType("*actions.ApplyAnalysis")).
		Run(func(args mock.Arguments) {
			update = args.Get(1).(*actions.ApplyAnalysis).Update
		}).Return(nil)

	err := svc.Process(context.Background(), companyID, doc.ID)

	require.NoError(t, err)
	require.Len(t, update.Transactions, 1)
	assert.True(t, update.Transactions[0].Amount.IsZero())
	// unparsable date falls back to the upload time
	assert.Equal(t, doc.CreatedAt, update.Transactions[0].Date)
}

func TestProcessDocument_LogsDataQualityWarnings(t *testing.T) {
	mockTable := &storage.MockIDocumentTable{}
	mockOp := &MockProcessor{}
	mockAnalyzer := &MockAnalyzer{}
	store := &storage.Storage{Tables: storage.Tables{Documents: mockTable}}
	logger, hook := logrustest.NewNullLogger()
	svc := NewDocumentService(store, mockOp, mockAnalyzer, logger)

	companyID := uuid.Must(uuid.NewV4())
	doc := storedDocument(companyID)
	mockTable.On("FindByID", mock.Anything, companyID, doc.ID).Return(doc, nil)
	mockAnalyzer.On("AnalyzeDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(&analysis.Result{
			Description:  "Bon fara suma",
			Amount:       "vezi anexa",
			Category:     "diverse",
			DocumentDate: "cândva în martie",
		}, nil)
	mockOp.On("Process", mock.Anything, mock.AnythingOfType("*actions.ApplyAnalysis")).Return(nil)

	err := svc.Process(context.Background(), companyID, doc.ID)

	require.NoError(t, err)
	// One warning per unparsable field, each tagged with the document.
	require.Len(t, hook.Entries, 2)
	fields := make(map[string]bool)
	for _, entry := range hook.Entries {
		assert.Equal(t, "DocumentService.Process.DataQualityWarning", entry.Message)
		assert.Equal(t, doc.ID, entry.Data["documentID"])
		field, _ := entry.Data["field"].(string)
		fields[field] = true
	}
	assert.True(t, fields["amount"])
	assert.True(t, fields["documentDate"])
}
