package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// Testify mocks for the table interfaces, used by the service tests.

type MockICompanyTable struct {
	mock.Mock
}

var _ ICompanyTable = (*MockICompanyTable)(nil)

func (m *MockICompanyTable) Insert(ctx context.Context, company *Company) (uuid.UUID, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockICompanyTable) FindByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	args := m.Called(ctx, id)
	company, _ := args.Get(0).(*Company)
	return company, args.Error(1)
}

func (m *MockICompanyTable) Update(ctx context.Context, id uuid.UUID, update *CompanyUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockICompanyTable) IncrementInvoiceCounter(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockIUserTable struct {
	mock.Mock
}

var _ IUserTable = (*MockIUserTable)(nil)

func (m *MockIUserTable) Insert(ctx context.Context, user *User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIUserTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*User)
	return user, args.Error(1)
}

func (m *MockIUserTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*User)
	return user, args.Error(1)
}

func (m *MockIUserTable) SetCompany(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

func (m *MockIUserTable) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockIDocumentTable struct {
	mock.Mock
}

var _ IDocumentTable = (*MockIDocumentTable)(nil)

func (m *MockIDocumentTable) Insert(ctx context.Context, doc *Document) (uuid.UUID, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIDocumentTable) FindByID(ctx context.Context, companyID, id uuid.UUID) (*Document, error) {
	args := m.Called(ctx, companyID, id)
	doc, _ := args.Get(0).(*Document)
	return doc, args.Error(1)
}

func (m *MockIDocumentTable) List(ctx context.Context, companyID uuid.UUID) ([]*Document, error) {
	args := m.Called(ctx, companyID)
	docs, _ := args.Get(0).([]*Document)
	return docs, args.Error(1)
}

func (m *MockIDocumentTable) Delete(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockIDocumentTable) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	args := m.Called(ctx, companyID, id, status)
	return args.Error(0)
}

func (m *MockIDocumentTable) ApplyAnalysis(ctx context.Context, companyID, id uuid.UUID, update *DocumentAnalysisUpdate) error {
	args := m.Called(ctx, companyID, id, update)
	return args.Error(0)
}

func (m *MockIDocumentTable) ListTransactions(ctx context.Context, companyID uuid.UUID) ([]*DocumentTransaction, error) {
	args := m.Called(ctx, companyID)
	txs, _ := args.Get(0).([]*DocumentTransaction)
	return txs, args.Error(1)
}

func (m *MockIDocumentTable) FindTransaction(ctx context.Context, companyID, id uuid.UUID) (*DocumentTransaction, error) {
	args := m.Called(ctx, companyID, id)
	tx, _ := args.Get(0).(*DocumentTransaction)
	return tx, args.Error(1)
}

type MockIInvoiceTable struct {
	mock.Mock
}

var _ IInvoiceTable = (*MockIInvoiceTable)(nil)

func (m *MockIInvoiceTable) Insert(ctx context.Context, invoice *Invoice) (uuid.UUID, error) {
	args := m.Called(ctx, invoice)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIInvoiceTable) FindByID(ctx context.Context, companyID, id uuid.UUID) (*Invoice, error) {
	args := m.Called(ctx, companyID, id)
	invoice, _ := args.Get(0).(*Invoice)
	return invoice, args.Error(1)
}

func (m *MockIInvoiceTable) List(ctx context.Context, companyID uuid.UUID) ([]*Invoice, error) {
	args := m.Called(ctx, companyID)
	invoices, _ := args.Get(0).([]*Invoice)
	return invoices, args.Error(1)
}

func (m *MockIInvoiceTable) ListOpen(ctx context.Context, companyID uuid.UUID) ([]*Invoice, error) {
	args := m.Called(ctx, companyID)
	invoices, _ := args.Get(0).([]*Invoice)
	return invoices, args.Error(1)
}

func (m *MockIInvoiceTable) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	args := m.Called(ctx, companyID, id, status)
	return args.Error(0)
}

type MockIProductTable struct {
	mock.Mock
}

var _ IProductTable = (*MockIProductTable)(nil)

func (m *MockIProductTable) Insert(ctx context.Context, product *Product) (uuid.UUID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIProductTable) List(ctx context.Context, companyID uuid.UUID) ([]*Product, error) {
	args := m.Called(ctx, companyID)
	products, _ := args.Get(0).([]*Product)
	return products, args.Error(1)
}

func (m *MockIProductTable) Update(ctx context.Context, companyID, id uuid.UUID, update *ProductUpdate) error {
	args := m.Called(ctx, companyID, id, update)
	return args.Error(0)
}

type MockIContractTable struct {
	mock.Mock
}

var _ IContractTable = (*MockIContractTable)(nil)

func (m *MockIContractTable) Insert(ctx context.Context, contract *Contract) (uuid.UUID, error) {
	args := m.Called(ctx, contract)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIContractTable) List(ctx context.Context, companyID uuid.UUID) ([]*Contract, error) {
	args := m.Called(ctx, companyID)
	contracts, _ := args.Get(0).([]*Contract)
	return contracts, args.Error(1)
}

func (m *MockIContractTable) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	args := m.Called(ctx, companyID, id, status)
	return args.Error(0)
}

type MockIStatementTable struct {
	mock.Mock
}

var _ IStatementTable = (*MockIStatementTable)(nil)

func (m *MockIStatementTable) Insert(ctx context.Context, statement *BankStatement, lines []BankTransaction) (uuid.UUID, error) {
	args := m.Called(ctx, statement, lines)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIStatementTable) FindByID(ctx context.Context, companyID, id uuid.UUID) (*BankStatement, error) {
	args := m.Called(ctx, companyID, id)
	statement, _ := args.Get(0).(*BankStatement)
	return statement, args.Error(1)
}

func (m *MockIStatementTable) List(ctx context.Context, companyID uuid.UUID) ([]*BankStatement, error) {
	args := m.Called(ctx, companyID)
	statements, _ := args.Get(0).([]*BankStatement)
	return statements, args.Error(1)
}

func (m *MockIStatementTable) Transactions(ctx context.Context, companyID, statementID uuid.UUID) ([]*BankTransaction, error) {
	args := m.Called(ctx, companyID, statementID)
	lines, _ := args.Get(0).([]*BankTransaction)
	return lines, args.Error(1)
}

func (m *MockIStatementTable) AllTransactions(ctx context.Context, companyID uuid.UUID) ([]*BankTransaction, error) {
	args := m.Called(ctx, companyID)
	lines, _ := args.Get(0).([]*BankTransaction)
	return lines, args.Error(1)
}

func (m *MockIStatementTable) FindTransaction(ctx context.Context, companyID, id uuid.UUID) (*BankTransaction, error) {
	args := m.Called(ctx, companyID, id)
	line, _ := args.Get(0).(*BankTransaction)
	return line, args.Error(1)
}

type MockIReconciliationTable struct {
	mock.Mock
}

var _ IReconciliationTable = (*MockIReconciliationTable)(nil)

func (m *MockIReconciliationTable) Insert(ctx context.Context, rec *Reconciliation) (uuid.UUID, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIReconciliationTable) ListActiveForStatement(ctx context.Context, companyID, statementID uuid.UUID) ([]*Reconciliation, error) {
	args := m.Called(ctx, companyID, statementID)
	recs, _ := args.Get(0).([]*Reconciliation)
	return recs, args.Error(1)
}

func (m *MockIReconciliationTable) ListActiveForCompany(ctx context.Context, companyID uuid.UUID) ([]*Reconciliation, error) {
	args := m.Called(ctx, companyID)
	recs, _ := args.Get(0).([]*Reconciliation)
	return recs, args.Error(1)
}

func (m *MockIReconciliationTable) SupersedeAutomatic(ctx context.Context, companyID, statementID uuid.UUID) error {
	args := m.Called(ctx, companyID, statementID)
	return args.Error(0)
}

func (m *MockIReconciliationTable) SupersedeForBankTransaction(ctx context.Context, companyID, bankTransactionID uuid.UUID) error {
	args := m.Called(ctx, companyID, bankTransactionID)
	return args.Error(0)
}
