package main

import (
	"fmt"
	"os"

	"github.com/diillson/produce-finops-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/produce-finops-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/produce-finops-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/produce-finops-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/produce-finops-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/produce-finops-dashboard-go/internal/application/usecase"
	"github.com/diillson/produce-finops-dashboard-go/pkg/console"
	"github.com/diillson/produce-finops-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	s3Repo := aws.NewS3Repository()
	datasetRepo := dataset.NewDatasetRepository(s3Repo)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
