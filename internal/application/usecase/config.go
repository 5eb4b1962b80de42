package usecase

import (
	"fmt"

	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
)

// Nomes das flags, usados para saber o que foi passado explicitamente.
const (
	FlagDataset    = "dataset"
	FlagSheet      = "sheet"
	FlagCostSource = "cost-source"
	FlagFruits     = "fruits"
	FlagUnit       = "unit"
	FlagTier       = "tier"
	FlagPeriod     = "period"
	FlagReportName = "report-name"
	FlagReportType = "report-type"
	FlagDir        = "dir"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
	FlagAWSProfile = "aws-profile"
	FlagAWSRegion  = "aws-region"
	FlagS3Endpoint = "s3-endpoint"
)

// ResolveArgs merges defaults < config file < environment < explicit flags.
// The input is not modified.
func (uc *DashboardUseCase) ResolveArgs(args *types.CLIArgs) (*types.CLIArgs, error) {
	cfg := &types.Config{}
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg = loaded
	}

	cfg, err := uc.configRepo.LoadEnv(cfg, args.EnvFile)
	if err != nil {
		return nil, err
	}

	out := *args

	fields := []struct {
		flag  string
		dst   *string
		value string
	}{
		{FlagDataset, &out.Dataset, cfg.Dataset},
		{FlagSheet, &out.Sheet, cfg.Sheet},
		{FlagCostSource, &out.CostSource, cfg.CostSource},
		{FlagUnit, &out.Unit, cfg.Unit},
		{FlagTier, &out.Tier, cfg.Tier},
		{FlagPeriod, &out.Period, cfg.Period},
		{FlagReportName, &out.ReportName, cfg.ReportName},
		{FlagDir, &out.Dir, cfg.Dir},
		{FlagLogLevel, &out.LogLevel, cfg.LogLevel},
		{FlagLogFormat, &out.LogFormat, cfg.LogFormat},
		{FlagAWSProfile, &out.AWSProfile, cfg.AWSProfile},
		{FlagAWSRegion, &out.AWSRegion, cfg.AWSRegion},
		{FlagS3Endpoint, &out.S3Endpoint, cfg.S3Endpoint},
	}
	for _, s := range fields {
		if s.value != "" && !args.IsExplicit(s.flag) {
			*s.dst = s.value
		}
	}

	if len(cfg.Fruits) > 0 && !args.IsExplicit(FlagFruits) {
		out.Fruits = append([]string(nil), cfg.Fruits...)
	}
	if len(cfg.ReportType) > 0 && !args.IsExplicit(FlagReportType) {
		out.ReportType = append([]string(nil), cfg.ReportType...)
	}

	if out.Dataset == "" {
		return nil, types.ErrNoDatasetSource
	}
	return &out, nil
}
