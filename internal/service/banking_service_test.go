package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

func newBankingTestService(t *testing.T) (*BankingService, *storage.MockIStatementTable, *MockProcessor) {
	t.Helper()
	mockTable := &storage.MockIStatementTable{}
	mockOp := &MockProcessor{}
	store := &storage.Storage{Tables: storage.Tables{Statements: mockTable}}
	svc := NewBankingService(store, mockOp)
	return svc, mockTable, mockOp
}

// -- Upload tests --

func TestUploadStatement_NoLines(t *testing.T) {
	svc, _, mockOp := newBankingTestService(t)

	_, err := svc.Upload(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), StatementUpload{
		FileName: "extras.pdf",
	})

	var verr *finance.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "transactions", verr.Field)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestUploadStatement_NormalizesLines(t *testing.T) {
	svc, _, mockOp := newBankingTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	statementID := uuid.Must(uuid.NewV4())

	var captured *actions.CreateStatement
	mockOp.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateStatement")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*actions.CreateStatement)
			captured.ID = statementID
		}).Return(nil)

	result, err := svc.Upload(context.Background(), companyID, uuid.Must(uuid.NewV4()), StatementUpload{
		FileName: "extras.pdf",
		BankName: "Banca Transilvania",
		Lines: []finance.StatementLine{
			{
				Date:        "15.03.2024",
				Description: "Plata factura INV-0042",
				Amount:      "1.234,56",
				Type:        "credit",
			},
			{
				Date:        "not a date",
				Description: "Comision administrare",
				Amount:      "-12.50",
			},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, statementID, result.ID)

	require.NotNil(t, captured)
	require.Len(t, captured.Lines, 2)
	assert.True(t, captured.Lines[0].Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "credit", captured.Lines[0].Type)
	// second line: type inferred from sign, date defaulted
	assert.Equal(t, "debit", captured.Lines[1].Type)
	assert.Len(t, result.Warnings, 2)
}

// -- ListTransactions tests --

func TestListTransactions_ScopedToStatement(t *testing.T) {
	svc, mockTable, _ := newBankingTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	statementID := uuid.Must(uuid.NewV4())
	mockTable.On("Transactions", mock.Anything, companyID, statementID).
		Return([]*storage.BankTransaction{
			{ID: uuid.Must(uuid.NewV4()), StatementID: statementID, Description: "Plata"},
		}, nil)

	lines, err := svc.ListTransactions(context.Background(), companyID, &statementID)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, statementID, lines[0].StatementID)
}

func TestListTransactions_AllForCompany(t *testing.T) {
	svc, mockTable, _ := newBankingTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	mockTable.On("AllTransactions", mock.Anything, companyID).
		Return([]*storage.BankTransaction{{}, {}}, nil)

	lines, err := svc.ListTransactions(context.Background(), companyID, nil)

	require.NoError(t, err)
	assert.Len(t, lines, 2)
}
