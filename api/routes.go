package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/auth"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/banking"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/contract"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/document"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/invoice"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/product"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/reconciliation"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/report"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/status"
	"github.com/ecks6/ContaAI2/internal/logging"
	"github.com/ecks6/ContaAI2/internal/operator"
	"github.com/ecks6/ContaAI2/internal/service"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	JWTSecret string
	Service   *service.Service
	Operator  *operator.OperatorDelegator
}

// publicPaths are reachable without a bearer token.
var publicPaths = map[string]bool{
	"/v1/auth/register": true,
	"/v1/auth/login":    true,
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Operator)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("ContaAI", "1.0.0"))
	humaAPI.UseMiddleware(middleware.Auth(humaAPI, r.JWTSecret, publicPaths))
	r.registerHandlers(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerHandlers(api huma.API) {
	auth.NewRegisterHandler(r.Service.Auth).Register(api)
	auth.NewLoginHandler(r.Service.Auth).Register(api)
	auth.NewSetupCompanyHandler(r.Service.Auth).Register(api)
	auth.NewMeHandler(r.Service.Auth).Register(api)

	document.NewUploadDocumentHandler(r.Service.Document, r.Logger).Register(api)
	document.NewProcessDocumentHandler(r.Service.Document, r.Logger).Register(api)
	document.NewListDocumentsHandler(r.Service.Document).Register(api)
	document.NewGetDocumentHandler(r.Service.Document).Register(api)
	document.NewDeleteDocumentHandler(r.Service.Document).Register(api)
	document.NewListTransactionsHandler(r.Service.Document).Register(api)

	invoice.NewCreateInvoiceHandler(r.Service.Invoice).Register(api)
	invoice.NewListInvoicesHandler(r.Service.Invoice).Register(api)
	invoice.NewUpdateInvoiceStatusHandler(r.Service.Invoice).Register(api)

	product.NewCreateProductHandler(r.Service.Product).Register(api)
	product.NewListProductsHandler(r.Service.Product).Register(api)
	product.NewUpdateProductHandler(r.Service.Product).Register(api)

	contract.NewCreateContractHandler(r.Service.Contract).Register(api)
	contract.NewListContractsHandler(r.Service.Contract).Register(api)
	contract.NewUpdateContractStatusHandler(r.Service.Contract).Register(api)

	banking.NewUploadStatementHandler(r.Service.Banking).Register(api)
	banking.NewListStatementsHandler(r.Service.Banking).Register(api)
	banking.NewListBankTransactionsHandler(r.Service.Banking).Register(api)

	report.NewFinancialReportHandler(r.Service.Report).Register(api)
	report.NewDashboardHandler(r.Service.Report).Register(api)
	report.NewExportReportHandler(r.Service.Report).Register(api)

	reconciliation.NewRunReconciliationHandler(r.Service.Reconcile).Register(api)
	reconciliation.NewManualReconciliationHandler(r.Service.Reconcile).Register(api)
	reconciliation.NewListReconciliationsHandler(r.Service.Reconcile).Register(api)
}
