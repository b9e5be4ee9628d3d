package storage

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecks6/ContaAI2/internal/config"
)

// Tables bundles the per-entity table interfaces. The abstraction allows
// swapping the implementation without changing callers.
type Tables struct {
	Companies       ICompanyTable
	Users           IUserTable
	Documents       IDocumentTable
	Invoices        IInvoiceTable
	Products        IProductTable
	Contracts       IContractTable
	Statements      IStatementTable
	Reconciliations IReconciliationTable
}

type Storage struct {
	DB *gorm.DB
	Tables
}

func NewStorage(env *config.Config) (*Storage, error) {
	gl := gormlogger.Default.LogMode(gormlogger.Silent)
	if env.DBLogMode {
		gl = gormlogger.Default
	}

	db, err := gorm.Open(sqlite.Open(env.DBPath), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Storage{DB: db, Tables: newTables(db)}, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Company{},
		&User{},
		&Document{},
		&DocumentTransaction{},
		&Invoice{},
		&Product{},
		&Contract{},
		&BankStatement{},
		&BankTransaction{},
		&Reconciliation{},
	)
}

func newTables(db *gorm.DB) Tables {
	return Tables{
		Companies:       &CompaniesTable{db: db},
		Users:           &UsersTable{db: db},
		Documents:       &DocumentsTable{db: db},
		Invoices:        &InvoicesTable{db: db},
		Products:        &ProductsTable{db: db},
		Contracts:       &ContractsTable{db: db},
		Statements:      &StatementsTable{db: db},
		Reconciliations: &ReconciliationsTable{db: db},
	}
}

// Writer is a transaction-bound view of the tables. Obtained through
// Storage.Write, committed or rolled back by the operator.
type Writer struct {
	tx *gorm.DB
	Tables
}

// Write begins a transaction and returns a Writer over it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &Writer{tx: tx, Tables: newTables(tx)}, nil
}

func (w *Writer) Commit() error {
	return w.tx.Commit().Error
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback().Error
}
