package usecase

import (
	"strings"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
	"github.com/diillson/produce-finops-dashboard-go/pkg/logger"
)

// exportReport grava o relatório em cada formato pedido; falhas não interrompem os demais.
func (uc *DashboardUseCase) exportReport(log *logger.Logger, report entity.DashboardReport, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		reportType = strings.ToLower(strings.TrimSpace(reportType))

		var (
			paths []string
			err   error
		)
		switch reportType {
		case "csv":
			var households, items string
			households, err = uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err == nil {
				items, err = uc.exportRepo.ExportItemsToCSV(report.View.Records, args.ReportName, args.Dir)
			}
			paths = []string{households, items}
		case "json":
			paths, err = single(uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir))
		case "pdf":
			paths, err = single(uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir))
		case "xlsx":
			paths, err = single(uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir))
		case "sqlite":
			paths, err = single(uc.exportRepo.ExportToSQLite(report, args.ReportName, args.Dir))
		default:
			uc.console.LogWarning("%s: %q", types.ErrUnsupportedReport, reportType)
			continue
		}

		label := strings.ToUpper(reportType)
		if err != nil {
			log.WithError(err).WithField("type", reportType).Error("export failed")
			uc.console.LogError("Failed to export to %s: %s", label, err)
			continue
		}
		for _, p := range paths {
			if p != "" {
				uc.console.LogSuccess("Successfully exported to %s: %s", label, p)
			}
		}
	}
}

func single(path string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
