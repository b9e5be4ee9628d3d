package storage

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return &Storage{DB: db, Tables: newTables(db)}
}

func insertTestCompany(t *testing.T, store *Storage, cui string) uuid.UUID {
	t.Helper()
	id, err := store.Companies.Insert(context.Background(), &Company{
		Name:          "SC Test SRL",
		CUI:           cui,
		InvoicePrefix: "FACT",
	})
	require.NoError(t, err)
	return id
}

func TestIncrementInvoiceCounter_SequentialValues(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	companyID := insertTestCompany(t, store, "RO111111")

	first, err := store.Companies.IncrementInvoiceCounter(ctx, companyID)
	require.NoError(t, err)
	second, err := store.Companies.IncrementInvoiceCounter(ctx, companyID)
	require.NoError(t, err)
	third, err := store.Companies.IncrementInvoiceCounter(ctx, companyID)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 3, third)

	company, err := store.Companies.FindByID(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, 4, company.InvoiceCounter)
}

func TestInvoices_ScopedToCompany(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	companyA := insertTestCompany(t, store, "RO222222")
	companyB := insertTestCompany(t, store, "RO333333")

	_, err := store.Invoices.Insert(ctx, &Invoice{
		CompanyID:  companyA,
		Number:     "FACT-0001",
		ClientName: "Client A",
		Total:      decimal.RequireFromString("100.00"),
		Status:     "draft",
		IssueDate:  time.Now().UTC(),
	})
	require.NoError(t, err)

	invoicesA, err := store.Invoices.List(ctx, companyA)
	require.NoError(t, err)
	invoicesB, err := store.Invoices.List(ctx, companyB)
	require.NoError(t, err)

	assert.Len(t, invoicesA, 1)
	assert.Empty(t, invoicesB)

	// Lookups across tenants come back empty, not as errors.
	found, err := store.Invoices.FindByID(ctx, companyB, invoicesA[0].ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStatements_InsertWithLines(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	companyID := insertTestCompany(t, store, "RO444444")

	statementID, err := store.Statements.Insert(ctx, &BankStatement{
		CompanyID: companyID,
		FileName:  "extras.csv",
		Status:    "completed",
	}, []BankTransaction{
		{Date: time.Now().UTC(), Description: "Incasare", Amount: decimal.RequireFromString("100.00"), Type: "income"},
		{Date: time.Now().UTC(), Description: "Comision", Amount: decimal.RequireFromString("-5.00"), Type: "expense"},
	})
	require.NoError(t, err)

	statement, err := store.Statements.FindByID(ctx, companyID, statementID)
	require.NoError(t, err)
	require.NotNil(t, statement)
	assert.Equal(t, 2, statement.TotalTransactions)

	lines, err := store.Statements.Transactions(ctx, companyID, statementID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, statementID, line.StatementID)
		assert.Equal(t, companyID, line.CompanyID)
	}
}

func TestReconciliations_SupersedeAutomaticKeepsManual(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	companyID := insertTestCompany(t, store, "RO555555")
	statementID := uuid.Must(uuid.NewV4())
	autoTx := uuid.Must(uuid.NewV4())
	manualTx := uuid.Must(uuid.NewV4())

	_, err := store.Reconciliations.Insert(ctx, &Reconciliation{
		CompanyID:         companyID,
		StatementID:       statementID,
		BankTransactionID: autoTx,
		MatchType:         "exact",
		Confidence:        1.0,
		Status:            "matched",
	})
	require.NoError(t, err)
	_, err = store.Reconciliations.Insert(ctx, &Reconciliation{
		CompanyID:         companyID,
		StatementID:       statementID,
		BankTransactionID: manualTx,
		MatchType:         "manual",
		Confidence:        1.0,
		Status:            "matched",
	})
	require.NoError(t, err)

	require.NoError(t, store.Reconciliations.SupersedeAutomatic(ctx, companyID, statementID))

	active, err := store.Reconciliations.ListActiveForStatement(ctx, companyID, statementID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "manual", active[0].MatchType)
	assert.Equal(t, manualTx, active[0].BankTransactionID)
}

func TestReconciliations_SupersedeForBankTransactionRetiresManual(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	companyID := insertTestCompany(t, store, "RO666666")
	statementID := uuid.Must(uuid.NewV4())
	bankTx := uuid.Must(uuid.NewV4())

	_, err := store.Reconciliations.Insert(ctx, &Reconciliation{
		CompanyID:         companyID,
		StatementID:       statementID,
		BankTransactionID: bankTx,
		MatchType:         "manual",
		Confidence:        1.0,
		Status:            "matched",
	})
	require.NoError(t, err)

	require.NoError(t, store.Reconciliations.SupersedeForBankTransaction(ctx, companyID, bankTx))

	// Re-pin after the override; exactly one active row again.
	_, err = store.Reconciliations.Insert(ctx, &Reconciliation{
		CompanyID:         companyID,
		StatementID:       statementID,
		BankTransactionID: bankTx,
		MatchType:         "manual",
		Confidence:        1.0,
		Status:            "matched",
	})
	require.NoError(t, err)

	active, err := store.Reconciliations.ListActiveForCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestUsers_FindByEmailAndSetCompany(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	companyID := insertTestCompany(t, store, "RO777777")

	userID, err := store.Users.Insert(ctx, &User{
		Email:        "ana@example.com",
		PasswordHash: "salt$hash",
		Role:         "admin",
	})
	require.NoError(t, err)

	missing, err := store.Users.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Users.SetCompany(ctx, userID, companyID))

	user, err := store.Users.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.CompanyID)
	assert.Equal(t, companyID, *user.CompanyID)
}

func TestDocuments_ApplyAnalysisReplacesTransactions(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	companyID := insertTestCompany(t, store, "RO888888")

	docID, err := store.Documents.Insert(ctx, &Document{
		CompanyID: companyID,
		FileName:  "factura.pdf",
		FileData:  "ZmFrZQ==",
		Status:    DocStatusProcessing,
	})
	require.NoError(t, err)

	update := &DocumentAnalysisUpdate{
		Status:     DocStatusCompleted,
		Confidence: 0.93,
		Supplier:   "SC Furnizor SRL",
		AmountText: "1.234,56 RON",
		Transactions: []DocumentTransaction{
			{Description: "Factura furnizor", Amount: decimal.RequireFromString("1234.56"), Type: "expense", Date: time.Now().UTC()},
		},
	}
	require.NoError(t, store.Documents.ApplyAnalysis(ctx, companyID, docID, update))

	doc, err := store.Documents.FindByID(ctx, companyID, docID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, DocStatusCompleted, doc.Status)
	assert.Equal(t, "SC Furnizor SRL", doc.Supplier)

	txs, err := store.Documents.ListTransactions(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, docID, txs[0].DocumentID)

	// A rerun replaces, never appends.
	require.NoError(t, store.Documents.ApplyAnalysis(ctx, companyID, docID, update))
	txs, err = store.Documents.ListTransactions(ctx, companyID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}
