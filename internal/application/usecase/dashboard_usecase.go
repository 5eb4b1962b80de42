package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/pricing"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
	"github.com/diillson/produce-finops-dashboard-go/pkg/logger"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface

	newLogger func(logger.Config) *logger.Logger
	newID     func() string
	now       func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		newLogger:   logger.New,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// runOptions são os argumentos já validados e convertidos para tipos de domínio.
type runOptions struct {
	costSource pricing.CostSource
	period     entity.Period
	filter     entity.ItemFilter
}

func parseRunOptions(args *types.CLIArgs) (runOptions, error) {
	var opts runOptions

	source, err := pricing.ParseCostSource(args.CostSource)
	if err != nil {
		return opts, err
	}
	opts.costSource = source

	opts.period = entity.PeriodYearly
	if args.Period != "" {
		if opts.period, err = entity.ParsePeriod(args.Period); err != nil {
			return opts, err
		}
	}

	opts.filter = entity.ItemFilter{Items: args.Fruits, Unit: args.Unit}
	if args.Tier != "" {
		if opts.filter.Tier, err = entity.ParsePriceTier(args.Tier); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(
	ctx context.Context,
	args *types.CLIArgs,
) error {
	resolved, err := uc.ResolveArgs(args)
	if err != nil {
		return err
	}

	log := uc.newLogger(logger.Config{Level: resolved.LogLevel, Format: resolved.LogFormat})
	ctx = log.WithContext(ctx)

	opts, err := parseRunOptions(resolved)
	if err != nil {
		return err
	}

	// Carrega e prepara o dataset
	status := uc.console.Status("Loading price dataset...")
	started := uc.now()

	rows, err := uc.datasetRepo.LoadRows(ctx, repository.DatasetRequest{
		Source: resolved.Dataset,
		Sheet:  resolved.Sheet,
		S3: repository.S3Options{
			Profile:  resolved.AWSProfile,
			Region:   resolved.AWSRegion,
			Endpoint: resolved.S3Endpoint,
		},
	})
	if err != nil {
		status.Stop()
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	status.Update("Computing costs and price tiers...")
	ds, load, err := pricing.BuildDataset(rows, pricing.Options{CostSource: opts.costSource})
	status.Stop()

	log.WithFields(map[string]interface{}{
		"source":      resolved.Dataset,
		"raw_rows":    load.RawRows,
		"valid":       load.ValidRecords,
		"cost_source": string(opts.costSource),
		"elapsed_ms":  uc.now().Sub(started).Milliseconds(),
	}).Info("dataset built")

	uc.reportIssues(log, load)
	if err != nil {
		if errors.Is(err, pricing.ErrEmptyDataset) {
			return fmt.Errorf("%s: %w", resolved.Dataset, err)
		}
		return err
	}

	view := ds.View(opts.filter)
	report := entity.DashboardReport{
		ID:          uc.newID(),
		GeneratedAt: uc.now(),
		Source:      resolved.Dataset,
		CostSource:  string(ds.CostSource()),
		Period:      opts.period,
		Summary:     ds.Summary(),
		Thresholds:  ds.Thresholds(),
		Benchmarks:  ds.Benchmarks(),
		Households:  ds.Households(),
		View:        view,
		Issues:      load.Issues,
	}

	analysis := resolved.Tiers || resolved.Yield || resolved.Distribution || resolved.Compare || resolved.Calculator
	if !analysis {
		uc.renderDashboard(ds, view, opts.period)
	}
	if resolved.Tiers {
		uc.renderTiers(ds)
	}
	if resolved.Yield {
		uc.renderYield(view)
	}
	if resolved.Distribution {
		uc.renderDistribution(ds, opts.filter)
	}
	if resolved.Compare {
		uc.renderCompare(view)
	}
	if resolved.Calculator {
		est, err := pricing.Estimate(ds, pricing.EstimateRequest{
			Composition: entity.HouseholdComposition{
				Adults:   resolved.Adults,
				Children: resolved.Children,
				Teens:    resolved.Teens,
			},
			Form:  resolved.Form,
			Items: resolved.Picked,
		})
		if err != nil {
			return err
		}
		uc.renderEstimate(est)
		report.Estimate = &est
	}

	// Exporta os relatórios do dashboard
	if resolved.ReportName != "" && len(resolved.ReportType) > 0 {
		uc.exportReport(log, report, resolved)
	}

	return nil
}

// reportIssues registra as linhas rejeitadas: detalhe no log (nível info), resumo no console.
func (uc *DashboardUseCase) reportIssues(log *logger.Logger, load pricing.LoadReport) {
	for _, issue := range load.Issues {
		log.WithFields(map[string]interface{}{
			"line": issue.Line,
			"item": issue.Item,
		}).Info(issue.Reason)
	}
	if n := len(load.Issues); n > 0 {
		uc.console.LogWarning("%d of %d row(s) were excluded from cost computation (use --log-level info for details)", n, load.RawRows)
	}
}
