package repository

import (
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.DashboardReport, filename string, outputDir string) (string, error)
	ExportItemsToCSV(records []entity.PriceRecord, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.DashboardReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.DashboardReport, filename string, outputDir string) (string, error)

	// Planilha com as abas Households, Items e Tiers.
	ExportToXLSX(report entity.DashboardReport, filename string, outputDir string) (string, error)
	// Snapshot SQLite com as tabelas items, household_costs e tier_benchmarks.
	ExportToSQLite(report entity.DashboardReport, filename string, outputDir string) (string, error)
}
