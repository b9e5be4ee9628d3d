package document

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

type mockDocumentService struct {
	mock.Mock
}

func (m *mockDocumentService) Upload(ctx context.Context, companyID, userID uuid.UUID, input service.DocumentUpload) (uuid.UUID, error) {
	args := m.Called(ctx, companyID, userID, input)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockDocumentService) Process(ctx context.Context, companyID, documentID uuid.UUID) error {
	args := m.Called(ctx, companyID, documentID)
	return args.Error(0)
}

func (m *mockDocumentService) Get(ctx context.Context, companyID, id uuid.UUID) (*service.Document, error) {
	args := m.Called(ctx, companyID, id)
	doc, _ := args.Get(0).(*service.Document)
	return doc, args.Error(1)
}

func (m *mockDocumentService) List(ctx context.Context, companyID uuid.UUID) ([]service.Document, error) {
	args := m.Called(ctx, companyID)
	docs, _ := args.Get(0).([]service.Document)
	return docs, args.Error(1)
}

func (m *mockDocumentService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *mockDocumentService) Transactions(ctx context.Context, companyID uuid.UUID) ([]service.DocumentTransaction, error) {
	args := m.Called(ctx, companyID)
	txs, _ := args.Get(0).([]service.DocumentTransaction)
	return txs, args.Error(1)
}

func newTestAPI(t *testing.T, svc documentService, companyID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, middleware.WithIdentity(ctx.Context(), uuid.Must(uuid.NewV4()), companyID)))
	})
	logger := logrus.New()
	NewUploadDocumentHandler(svc, logger).Register(api)
	NewProcessDocumentHandler(svc, logger).Register(api)
	NewListDocumentsHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewGetDocumentHandler(svc).Register(api)
	NewDeleteDocumentHandler(svc).Register(api)
	return api
}

func TestHTTP_UploadDocument_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())
	fileData := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))

	mockSvc := new(mockDocumentService)
	mockSvc.On("Upload", mock.Anything, companyID, mock.Anything, mock.MatchedBy(func(input service.DocumentUpload) bool {
		return input.FileName == "factura.pdf" && input.FileData == fileData
	})).Return(docID, nil)
	mockSvc.On("Process", mock.Anything, companyID, docID).Return(nil)
	mockSvc.On("Get", mock.Anything, companyID, docID).Return(&service.Document{
		ID:        docID,
		FileName:  "factura.pdf",
		Status:    "completed",
		Supplier:  "SC Furnizor SRL",
		Amount:    "1.234,56 RON",
		CreatedAt: time.Now().UTC(),
	}, nil)

	resp := newTestAPI(t, mockSvc, companyID).Post("/v1/documents", UploadDocumentBody{
		FileName: "factura.pdf",
		FileType: "application/pdf",
		FileData: fileData,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Document
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completed", body.Status)
	assert.Equal(t, "SC Furnizor SRL", body.Supplier)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UploadDocument_AnalysisFailureStillReturnsDocument(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())
	fileData := base64.StdEncoding.EncodeToString([]byte("garbage"))

	mockSvc := new(mockDocumentService)
	mockSvc.On("Upload", mock.Anything, companyID, mock.Anything, mock.Anything).Return(docID, nil)
	mockSvc.On("Process", mock.Anything, companyID, docID).Return(errors.New("model unavailable"))
	mockSvc.On("Get", mock.Anything, companyID, docID).Return(&service.Document{
		ID:        docID,
		FileName:  "factura.pdf",
		Status:    "error",
		CreatedAt: time.Now().UTC(),
	}, nil)

	resp := newTestAPI(t, mockSvc, companyID).Post("/v1/documents", UploadDocumentBody{
		FileName: "factura.pdf",
		FileData: fileData,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Document
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UploadDocument_InvalidBase64(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDocumentService)
	mockSvc.On("Upload", mock.Anything, companyID, mock.Anything, mock.Anything).
		Return(uuid.Nil, &finance.ValidationError{Field: "fileData", Reason: "not valid base64"})

	resp := newTestAPI(t, mockSvc, companyID).Post("/v1/documents", UploadDocumentBody{
		FileName: "factura.pdf",
		FileData: "!!! not base64 !!!",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Process")
}

func TestHTTP_ProcessDocument_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDocumentService)
	mockSvc.On("Process", mock.Anything, companyID, docID).Return(nil)
	mockSvc.On("Get", mock.Anything, companyID, docID).Return(&service.Document{
		ID:        docID,
		FileName:  "factura.pdf",
		Status:    "completed",
		Supplier:  "SC Furnizor SRL",
		CreatedAt: time.Now().UTC(),
	}, nil)

	resp := newTestAPI(t, mockSvc, companyID).Post("/v1/documents/"+docID.String()+"/process", struct{}{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Document
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completed", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ProcessDocument_UnknownDocument(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDocumentService)
	mockSvc.On("Process", mock.Anything, companyID, docID).
		Return(&finance.NotFoundError{Entity: "document", ID: docID.String()})

	resp := newTestAPI(t, mockSvc, companyID).Post("/v1/documents/"+docID.String()+"/process", struct{}{})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertNotCalled(t, "Get")
}

func TestHTTP_GetDocument_NotFound(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDocumentService)
	mockSvc.On("Get", mock.Anything, companyID, docID).
		Return(nil, &finance.NotFoundError{Entity: "document", ID: docID.String()})

	resp := newTestAPI(t, mockSvc, companyID).Get("/v1/documents/" + docID.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteDocument_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDocumentService)
	mockSvc.On("Delete", mock.Anything, companyID, docID).Return(nil)

	resp := newTestAPI(t, mockSvc, companyID).Delete("/v1/documents/" + docID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	docID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDocumentService)
	mockSvc.On("Transactions", mock.Anything, companyID).Return([]service.DocumentTransaction{
		{
			ID:          uuid.Must(uuid.NewV4()),
			DocumentID:  docID,
			Description: "Factura furnizor",
			Type:        "expense",
			Date:        time.Now().UTC(),
		},
	}, nil)

	resp := newTestAPI(t, mockSvc, companyID).Get("/v1/documents/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsOutput
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Len(t, body.Body.Transactions, 1)
	assert.Equal(t, docID.String(), body.Body.Transactions[0].DocumentID)
	mockSvc.AssertExpectations(t)
}
