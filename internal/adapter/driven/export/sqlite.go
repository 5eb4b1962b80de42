package export

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

var sqliteSchema = []string{
	`CREATE TABLE snapshot (
		id TEXT PRIMARY KEY,
		generated_at TEXT NOT NULL,
		source TEXT NOT NULL,
		cost_source TEXT NOT NULL,
		period_days INTEGER NOT NULL,
		total_items INTEGER NOT NULL,
		rejected_rows INTEGER NOT NULL
	)`,
	`CREATE TABLE items (
		item TEXT NOT NULL,
		form TEXT NOT NULL,
		retail_price REAL NOT NULL,
		retail_price_unit TEXT,
		yield REAL NOT NULL,
		cup_equivalent_size REAL NOT NULL,
		cup_equivalent_unit TEXT,
		cup_equivalent_price REAL,
		calculated_cost REAL NOT NULL,
		actual_cost REAL NOT NULL,
		price_check INTEGER NOT NULL,
		price_tier TEXT NOT NULL
	)`,
	`CREATE TABLE household_costs (
		household_key TEXT NOT NULL,
		household_type TEXT NOT NULL,
		daily_cups REAL NOT NULL,
		total_members INTEGER NOT NULL,
		benchmark TEXT NOT NULL,
		price_per_cup REAL NOT NULL,
		daily REAL NOT NULL,
		weekly REAL NOT NULL,
		monthly REAL NOT NULL,
		yearly REAL NOT NULL,
		PRIMARY KEY (household_key, benchmark)
	)`,
	`CREATE TABLE tier_benchmarks (
		benchmark TEXT PRIMARY KEY,
		avg_cost_per_cup REAL NOT NULL,
		items INTEGER NOT NULL,
		fell_back INTEGER NOT NULL
	)`,
	`CREATE INDEX idx_items_tier ON items(price_tier)`,
}

// ExportToSQLite grava um snapshot consultável do relatório.
func (r *ExportRepositoryImpl) ExportToSQLite(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "db")
	if err != nil {
		return "", err
	}

	db, err := sql.Open("sqlite", outputFilename)
	if err != nil {
		return "", fmt.Errorf("error opening SQLite file: %w", err)
	}
	defer db.Close()

	if err := writeSnapshot(db, report); err != nil {
		return "", fmt.Errorf("error writing SQLite snapshot: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func writeSnapshot(db *sql.DB, report entity.DashboardReport) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range sqliteSchema {
		if _, err = tx.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err = tx.Exec(`INSERT INTO snapshot VALUES (?,?,?,?,?,?,?)`, report.ID,
		report.GeneratedAt.UTC().Format(time.RFC3339), report.Source, report.CostSource,
		int(report.Period), report.Summary.TotalItems, len(report.Issues)); err != nil {
		return err
	}

	itemStmt, err := tx.Prepare(`INSERT INTO items VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer itemStmt.Close()
	for _, rec := range report.View.Records {
		var precomputed interface{}
		if rec.CupEquivalentPrice != nil {
			precomputed = *rec.CupEquivalentPrice
		}
		if _, err = itemStmt.Exec(rec.Item, rec.Form, rec.RetailPrice, rec.RetailPriceUnit, rec.Yield,
			rec.CupEquivalentSize, rec.CupEquivalentUnit, precomputed, rec.CalculatedCost, rec.ActualCost,
			rec.PriceCheck, rec.Tier.String()); err != nil {
			return err
		}
	}

	householdStmt, err := tx.Prepare(`INSERT INTO household_costs VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer householdStmt.Close()
	for _, h := range report.Households {
		for _, c := range h.Costs {
			if _, err = householdStmt.Exec(h.Key, h.Description, h.DailyCups, h.Members, string(c.Benchmark),
				c.PricePerCup, c.Daily, c.Weekly, c.Monthly, c.Yearly); err != nil {
				return err
			}
		}
	}

	tierStmt, err := tx.Prepare(`INSERT INTO tier_benchmarks VALUES (?,?,?,?)`)
	if err != nil {
		return err
	}
	defer tierStmt.Close()
	for _, t := range entity.PriceTiers() {
		if _, err = tierStmt.Exec(t.Key(), report.Benchmarks.ForTier(t), report.Summary.TierCounts[t],
			containsTier(report.Benchmarks.FellBack, t)); err != nil {
			return err
		}
	}
	if _, err = tierStmt.Exec(string(entity.BenchmarkAverage), report.Benchmarks.Average, report.Summary.TotalItems, false); err != nil {
		return err
	}

	return tx.Commit()
}
