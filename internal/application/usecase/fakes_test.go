package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
	"github.com/diillson/produce-finops-dashboard-go/pkg/logger"
)

type fakeDatasetRepo struct {
	rows []entity.RawPriceRow
	err  error
	req  repository.DatasetRequest
}

func (f *fakeDatasetRepo) LoadRows(_ context.Context, req repository.DatasetRequest) ([]entity.RawPriceRow, error) {
	f.req = req
	return f.rows, f.err
}

type fakeConfigRepo struct {
	file    *types.Config
	fileErr error
	env     func(cfg types.Config) types.Config
	envFile string
}

func (f *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	if f.fileErr != nil {
		return nil, f.fileErr
	}
	cfg := *f.file
	return &cfg, nil
}

func (f *fakeConfigRepo) LoadEnv(cfg *types.Config, envFile string) (*types.Config, error) {
	f.envFile = envFile
	out := *cfg
	if f.env != nil {
		out = f.env(out)
	}
	return &out, nil
}

type fakeExportRepo struct {
	calls  []string
	failOn map[string]error
	report entity.DashboardReport
	items  []entity.PriceRecord
}

func (f *fakeExportRepo) record(kind, name string, report entity.DashboardReport) (string, error) {
	f.calls = append(f.calls, kind)
	f.report = report
	if err := f.failOn[kind]; err != nil {
		return "", err
	}
	return fmt.Sprintf("/out/%s.%s", name, kind), nil
}

func (f *fakeExportRepo) ExportToCSV(r entity.DashboardReport, name, _ string) (string, error) {
	return f.record("csv", name, r)
}

func (f *fakeExportRepo) ExportItemsToCSV(records []entity.PriceRecord, name, _ string) (string, error) {
	f.calls = append(f.calls, "items")
	f.items = records
	return fmt.Sprintf("/out/%s_items.csv", name), nil
}

func (f *fakeExportRepo) ExportToJSON(r entity.DashboardReport, name, _ string) (string, error) {
	return f.record("json", name, r)
}

func (f *fakeExportRepo) ExportToPDF(r entity.DashboardReport, name, _ string) (string, error) {
	return f.record("pdf", name, r)
}

func (f *fakeExportRepo) ExportToXLSX(r entity.DashboardReport, name, _ string) (string, error) {
	return f.record("xlsx", name, r)
}

func (f *fakeExportRepo) ExportToSQLite(r entity.DashboardReport, name, _ string) (string, error) {
	return f.record("sqlite", name, r)
}

// fakeConsole guarda tudo que seria exibido, para as asserções.
type fakeConsole struct {
	printed  []string
	infos    []string
	warnings []string
	errors   []string
	success  []string
	panels   map[string][]string
	bars     map[string][]types.BarValue
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{panels: map[string][]string{}, bars: map[string][]types.BarValue{}}
}

func (c *fakeConsole) Print(a ...interface{}) { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) {
	c.printed = append(c.printed, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Println(a ...interface{}) { c.printed = append(c.printed, fmt.Sprint(a...)) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle                { return nopHandle{} }
func (c *fakeConsole) Progress([]string) types.ProgressHandle          { return nopHandle{} }
func (c *fakeConsole) ProgressWithTotal(int) types.ProgressHandle      { return nopHandle{} }
func (c *fakeConsole) CreateTable() types.TableInterface               { return &fakeTable{} }
func (c *fakeConsole) DisplayPanel(title string, lines []string)       { c.panels[title] = lines }
func (c *fakeConsole) DisplayBars(title string, bars []types.BarValue) { c.bars[title] = bars }

func (c *fakeConsole) output() string {
	return strings.Join(c.printed, "\n")
}

type nopHandle struct{}

func (nopHandle) Update(string) {}
func (nopHandle) Increment()    {}
func (nopHandle) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	lines := []string{strings.Join(t.columns, " | ")}
	for _, r := range t.rows {
		lines = append(lines, strings.Join(r, " | "))
	}
	return strings.Join(lines, "\n")
}

type fixture struct {
	uc      *DashboardUseCase
	dataset *fakeDatasetRepo
	config  *fakeConfigRepo
	export  *fakeExportRepo
	console *fakeConsole
}

func newFixture(rows []entity.RawPriceRow) *fixture {
	f := &fixture{
		dataset: &fakeDatasetRepo{rows: rows},
		config:  &fakeConfigRepo{file: &types.Config{}},
		export:  &fakeExportRepo{},
		console: newFakeConsole(),
	}
	f.uc = NewDashboardUseCase(f.dataset, f.export, f.config, f.console)
	f.uc.newLogger = func(cfg logger.Config) *logger.Logger {
		cfg.Output = io.Discard
		return logger.New(cfg)
	}
	f.uc.newID = func() string { return "report-1" }
	f.uc.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	return f
}

func ptr(v float64) *float64 { return &v }

// produceRows gera n itens com custo real 1..n (preço i, xícara 1, yield 1).
func produceRows(n int) []entity.RawPriceRow {
	rows := make([]entity.RawPriceRow, n)
	for i := range rows {
		rows[i] = entity.RawPriceRow{
			Line:              i + 2,
			Fruit:             fmt.Sprintf("item %d", i+1),
			Form:              "Fresh",
			RetailPrice:       ptr(float64(i + 1)),
			RetailPriceUnit:   "per pound",
			Yield:             ptr(1),
			CupEquivalentSize: ptr(1),
			CupEquivalentUnit: "pounds",
		}
	}
	return rows
}
