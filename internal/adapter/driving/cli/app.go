package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/diillson/produce-finops-dashboard-go/internal/application/usecase"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
	"github.com/diillson/produce-finops-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:     "produce-dashboard",
		Short:   "Produce FinOps Dashboard CLI",
		Long:    "Affordability dashboard for fruit and vegetable retail prices: price tiers, household costs and exports.",
		Version: version.FormatVersion(),
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Produce FinOps Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()

	// Fonte dos dados e configuração
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("env-file", ".env", "Path to a .env file with PRODUCE_* variables")
	flags.StringP(usecase.FlagDataset, "f", "", "Price dataset: .csv/.xlsx path or s3://bucket/key")
	flags.String(usecase.FlagSheet, "", "Worksheet to read from an .xlsx dataset (default: first sheet)")
	flags.String(usecase.FlagCostSource, "precomputed", "Cost per cup source: precomputed or derived")

	// Filtros
	flags.StringSlice(usecase.FlagFruits, nil, "Only include these items (comma-separated)")
	flags.String(usecase.FlagUnit, "", "Only include items with this cup equivalent unit")
	flags.String(usecase.FlagTier, "", "Only include one price tier: low, budget, moderate or high")
	flags.String(usecase.FlagPeriod, "yearly", "Household cost period: daily, weekly, monthly or yearly")

	// Visões de análise
	flags.Bool("tiers", false, "Display insights and the most affordable items of each price tier")
	flags.Bool("yield", false, "Display how edible yield affects the actual cost per cup")
	flags.Bool("distribution", false, "Display the cost per cup histogram and density curve")
	flags.Bool("compare", false, "Compare retail price with actual cost per cup for the cheapest items")
	flags.Bool("calculator", false, "Estimate the cost for a custom household")
	flags.Int("adults", 0, "Calculator: number of adults (0-10)")
	flags.Int("children", 0, "Calculator: number of children (0-10)")
	flags.Int("teens", 0, "Calculator: number of teens (0-10)")
	flags.String("form", "", "Calculator: restrict picked items to one form, e.g. Fresh")
	flags.StringSlice("picked", nil, "Calculator: items used to price the estimate (comma-separated)")

	// Relatórios
	flags.StringP(usecase.FlagReportName, "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP(usecase.FlagReportType, "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx, sqlite")
	flags.StringP(usecase.FlagDir, "d", "", "Directory to save the report files (default: current directory)")

	// Logs e S3
	flags.String(usecase.FlagLogLevel, "warn", "Diagnostic log level: debug, info, warn, error or disabled")
	flags.String(usecase.FlagLogFormat, "console", "Diagnostic log format: console or json")
	flags.String(usecase.FlagAWSProfile, "", "AWS shared config profile used for s3:// datasets")
	flags.String(usecase.FlagAWSRegion, "", "AWS region used for s3:// datasets (default: us-east-1)")
	flags.String(usecase.FlagS3Endpoint, "", "Custom S3 endpoint, e.g. a MinIO URL")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	dataset, _ := flags.GetString(usecase.FlagDataset)
	sheet, _ := flags.GetString(usecase.FlagSheet)
	costSource, _ := flags.GetString(usecase.FlagCostSource)
	fruits, _ := flags.GetStringSlice(usecase.FlagFruits)
	unit, _ := flags.GetString(usecase.FlagUnit)
	tier, _ := flags.GetString(usecase.FlagTier)
	period, _ := flags.GetString(usecase.FlagPeriod)
	tiers, _ := flags.GetBool("tiers")
	yield, _ := flags.GetBool("yield")
	distribution, _ := flags.GetBool("distribution")
	compare, _ := flags.GetBool("compare")
	calculator, _ := flags.GetBool("calculator")
	adults, _ := flags.GetInt("adults")
	children, _ := flags.GetInt("children")
	teens, _ := flags.GetInt("teens")
	form, _ := flags.GetString("form")
	picked, _ := flags.GetStringSlice("picked")
	reportName, _ := flags.GetString(usecase.FlagReportName)
	reportType, _ := flags.GetStringSlice(usecase.FlagReportType)
	dir, _ := flags.GetString(usecase.FlagDir)
	logLevel, _ := flags.GetString(usecase.FlagLogLevel)
	logFormat, _ := flags.GetString(usecase.FlagLogFormat)
	awsProfile, _ := flags.GetString(usecase.FlagAWSProfile)
	awsRegion, _ := flags.GetString(usecase.FlagAWSRegion)
	s3Endpoint, _ := flags.GetString(usecase.FlagS3Endpoint)

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	// Só as flags passadas de fato têm precedência sobre arquivo e ambiente
	explicit := make(map[string]bool)
	flags.Visit(func(f *pflag.Flag) {
		explicit[f.Name] = true
	})

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		EnvFile:      envFile,
		Dataset:      dataset,
		Sheet:        sheet,
		CostSource:   costSource,
		Fruits:       fruits,
		Unit:         unit,
		Tier:         tier,
		Period:       period,
		Tiers:        tiers,
		Yield:        yield,
		Distribution: distribution,
		Compare:      compare,
		Calculator:   calculator,
		Adults:       adults,
		Children:     children,
		Teens:        teens,
		Form:         form,
		Picked:       picked,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		AWSProfile:   awsProfile,
		AWSRegion:    awsRegion,
		S3Endpoint:   s3Endpoint,
		Explicit:     explicit,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
