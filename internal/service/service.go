package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ecks6/ContaAI2/internal/analysis"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// Processor executes a write action on the company's worker and waits for the
// result. Satisfied by operator.OperatorDelegator.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Auth      *AuthService
	Document  *DocumentService
	Invoice   *InvoiceService
	Product   *ProductService
	Contract  *ContractService
	Banking   *BankingService
	Report    *ReportService
	Reconcile *ReconcileService
}

// NewService creates a new Service with the given collaborators.
func NewService(store *storage.Storage, op Processor, analyzer analysis.Analyzer, jwtSecret string, log *logrus.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(store, op, jwtSecret),
		Document:  NewDocumentService(store, op, analyzer, log),
		Invoice:   NewInvoiceService(store, op),
		Product:   NewProductService(store, op),
		Contract:  NewContractService(store, op),
		Banking:   NewBankingService(store, op),
		Report:    NewReportService(store),
		Reconcile: NewReconcileService(store, op),
	}
}
