package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// itemHeaders é a ordem das colunas da tabela de itens em CSV, XLSX e SQLite.
var itemHeaders = []string{
	"Item", "Form", "RetailPrice", "RetailPriceUnit", "Yield", "CupEquivalentSize",
	"CupEquivalentUnit", "CupEquivalentPrice", "CalculatedCost", "ActualCost", "PriceCheck", "PriceTier",
}

// --- CSV ---

// ExportToCSV grava a tabela larga de custos por domicílio.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	table := [][]string{entity.HouseholdCostHeaders()}
	for _, h := range report.Households {
		table = append(table, householdRecord(h))
	}

	if err := writeCSV(outputFilename, table); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

// ExportItemsToCSV grava os registros classificados, um por linha.
func (r *ExportRepositoryImpl) ExportItemsToCSV(records []entity.PriceRecord, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename+"_items", outputDir, "csv")
	if err != nil {
		return "", err
	}

	table := [][]string{itemHeaders}
	for _, rec := range records {
		table = append(table, itemRecord(rec))
	}

	if err := writeCSV(outputFilename, table); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

func writeCSV(path string, table [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(table); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

func householdRecord(h entity.HouseholdCostRow) []string {
	record := []string{
		h.Description,
		formatFloat(h.DailyCups),
		formatFloat(h.FruitCups),
		formatFloat(h.VegetableCups),
		strconv.Itoa(h.Members),
	}
	for _, v := range h.CostValues() {
		record = append(record, money(v))
	}
	return record
}

func itemRecord(rec entity.PriceRecord) []string {
	precomputed := ""
	if rec.CupEquivalentPrice != nil {
		precomputed = formatFloat(*rec.CupEquivalentPrice)
	}
	return []string{
		rec.Item,
		rec.Form,
		formatFloat(rec.RetailPrice),
		rec.RetailPriceUnit,
		formatFloat(rec.Yield),
		formatFloat(rec.CupEquivalentSize),
		rec.CupEquivalentUnit,
		precomputed,
		formatFloat(rec.CalculatedCost),
		formatFloat(rec.ActualCost),
		strconv.FormatBool(rec.PriceCheck),
		rec.Tier.String(),
	}
}

// --- JSON ---

func (r *ExportRepositoryImpl) ExportToJSON(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// formatFloat usa a menor representação exata (0.25, não 0.250000).
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
