package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a canonical transaction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is the canonical shape every heterogeneous source record
// (document-generated transaction, invoice, statement line) is normalized to.
// Income amounts are non-negative; expense amounts contribute negatively to
// net profit regardless of stored sign.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Date        time.Time
	SourceID    string
}

// BankTransactionType distinguishes debits from credits on a statement.
type BankTransactionType string

const (
	BankDebit  BankTransactionType = "debit"
	BankCredit BankTransactionType = "credit"
)

// BankTransaction is one line of a bank statement. It belongs to exactly one
// statement and has no lifecycle of its own.
type BankTransaction struct {
	ID           string
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Balance      decimal.Decimal
	Type         BankTransactionType
	Counterparty string
	IBAN         string
	StatementID  string
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is the engine's view of an invoice record.
type Invoice struct {
	ID        string
	Number    string
	ClientID  string
	Total     decimal.Decimal
	Status    InvoiceStatus
	IssueDate time.Time
	DueDate   time.Time
}

// Contract is the engine's view of a contract record.
type Contract struct {
	ID     string
	Status string
	Value  decimal.Decimal
}

// Product is the engine's view of an inventory record.
type Product struct {
	ID        string
	Stock     int64
	MinStock  int64
	UnitPrice decimal.Decimal
}

// DocumentInfo carries the document fields the report needs.
type DocumentInfo struct {
	ID     string
	Status string
}

// StatementInfo carries the statement fields the report needs.
type StatementInfo struct {
	ID               string
	TransactionCount int
}

// Snapshot is a bounded, read-only view of one company's records, fetched by
// the caller before any computation starts. The engine never does I/O itself.
type Snapshot struct {
	Transactions []Transaction
	Invoices     []Invoice
	Contracts    []Contract
	Products     []Product
	Documents    []DocumentInfo
	Statements   []StatementInfo
}
