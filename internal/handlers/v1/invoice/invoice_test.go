package invoice

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) Create(ctx context.Context, companyID uuid.UUID, input service.InvoiceCreate) (*service.Invoice, error) {
	args := m.Called(ctx, companyID, input)
	invoice, _ := args.Get(0).(*service.Invoice)
	return invoice, args.Error(1)
}

func (m *mockInvoiceService) Get(ctx context.Context, companyID, id uuid.UUID) (*service.Invoice, error) {
	args := m.Called(ctx, companyID, id)
	invoice, _ := args.Get(0).(*service.Invoice)
	return invoice, args.Error(1)
}

func (m *mockInvoiceService) List(ctx context.Context, companyID uuid.UUID) ([]service.Invoice, error) {
	args := m.Called(ctx, companyID)
	invoices, _ := args.Get(0).([]service.Invoice)
	return invoices, args.Error(1)
}

func (m *mockInvoiceService) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	args := m.Called(ctx, companyID, id, status)
	return args.Error(0)
}

// newTestAPI registers the invoice handlers with the given identity stamped
// on every request.
func newTestAPI(t *testing.T, svc invoiceService, userID, companyID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, middleware.WithIdentity(ctx.Context(), userID, companyID)))
	})
	NewCreateInvoiceHandler(svc).Register(api)
	NewListInvoicesHandler(svc).Register(api)
	NewUpdateInvoiceStatusHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateInvoice_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockInvoiceService)
	mockSvc.On("Create", mock.Anything, companyID, mock.MatchedBy(func(input service.InvoiceCreate) bool {
		return input.ClientName == "SC Client SRL" &&
			input.Total.Equal(decimal.RequireFromString("1190.00")) &&
			input.IssueDate.Equal(issueDate)
	})).Return(&service.Invoice{
		ID:         invoiceID,
		Number:     "FACT-0007",
		ClientName: "SC Client SRL",
		Total:      decimal.RequireFromString("1190.00"),
		Status:     "draft",
		IssueDate:  issueDate,
	}, nil)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4()), companyID).Post("/v1/invoices", CreateInvoiceBody{
		ClientName: "SC Client SRL",
		Total:      "1190.00",
		IssueDate:  issueDate.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Invoice
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FACT-0007", body.Number)
	assert.Equal(t, invoiceID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateInvoice_InvalidTotal(t *testing.T) {
	mockSvc := new(mockInvoiceService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())).Post("/v1/invoices", CreateInvoiceBody{
		ClientName: "SC Client SRL",
		Total:      "not-a-number",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateInvoice_MissingClientNameRejectedBySchema(t *testing.T) {
	mockSvc := new(mockInvoiceService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())).Post("/v1/invoices", CreateInvoiceBody{
		Total: "100.00",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateInvoice_NoCompany(t *testing.T) {
	mockSvc := new(mockInvoiceService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4()), uuid.Nil).Post("/v1/invoices", CreateInvoiceBody{
		ClientName: "SC Client SRL",
		Total:      "100.00",
	})

	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_ListInvoices_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockInvoiceService)
	mockSvc.On("List", mock.Anything, companyID).Return([]service.Invoice{
		{ID: uuid.Must(uuid.NewV4()), Number: "FACT-0002", Total: decimal.New(200, 0), Status: "sent", IssueDate: time.Now()},
		{ID: uuid.Must(uuid.NewV4()), Number: "FACT-0001", Total: decimal.New(100, 0), Status: "paid", IssueDate: time.Now()},
	}, nil)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4()), companyID).Get("/v1/invoices")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListInvoicesOutput
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Len(t, body.Body.Invoices, 2)
	assert.Equal(t, "FACT-0002", body.Body.Invoices[0].Number)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateInvoiceStatus_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockInvoiceService)
	mockSvc.On("SetStatus", mock.Anything, companyID, invoiceID, "paid").Return(nil)
	mockSvc.On("Get", mock.Anything, companyID, invoiceID).Return(&service.Invoice{
		ID:        invoiceID,
		Number:    "FACT-0001",
		Total:     decimal.New(100, 0),
		Status:    "paid",
		IssueDate: time.Now(),
	}, nil)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4()), companyID).Put(
		"/v1/invoices/"+invoiceID.String()+"/status",
		map[string]any{"status": "paid"},
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Invoice
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "paid", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateInvoiceStatus_NotFound(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockInvoiceService)
	mockSvc.On("SetStatus", mock.Anything, companyID, invoiceID, "paid").
		Return(&finance.NotFoundError{Entity: "invoice", ID: invoiceID.String()})

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4()), companyID).Put(
		"/v1/invoices/"+invoiceID.String()+"/status",
		map[string]any{"status": "paid"},
	)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
