package handlers

import (
	"github.com/jmoiron/sqlx"

	"stockroom/internal/repos"
	"stockroom/internal/services"
)

type Deps struct {
	SKUHandler         *SKUHandler
	TransactionHandler *TransactionHandler
	DashboardHandler   *DashboardHandler
	ReportHandler      *ReportHandler
	PageHandler        *PageHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	skuRepo := repos.NewSKURepo(db)
	txRepo := repos.NewTransactionRepo(db)
	reportRepo := repos.NewReportRepo(db)

	registrySvc := services.NewRegistryService(skuRepo)
	ledgerSvc := services.NewLedgerService(skuRepo, txRepo)
	reportSvc := services.NewReportService(reportRepo)

	return &Deps{
		SKUHandler:         &SKUHandler{Registry: registrySvc},
		TransactionHandler: &TransactionHandler{Ledger: ledgerSvc},
		DashboardHandler:   &DashboardHandler{Reports: reportSvc},
		ReportHandler:      &ReportHandler{Reports: reportSvc},
		PageHandler:        &PageHandler{Registry: registrySvc, Ledger: ledgerSvc, Reports: reportSvc},
	}
}
