package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
)

const sampleCSV = `Fruit,Form,RetailPrice,RetailPriceUnit,Yield,CupEquivalentSize,CupEquivalentUnit,CupEquivalentPrice
Apples,Fresh,1.5193,per pound,0.9,0.2425,pounds,0.4094
Kiwi,,2.1,per pound,0.76,0.3,,
Bad Row,Fresh,abc,per pound,0.5,0.25,pounds,
,,,,,,,
`

type fakeStore struct {
	objects map[string][]byte
	gotOpts repository.S3Options
}

func (f *fakeStore) GetObject(ctx context.Context, opts repository.S3Options, bucket, key string) ([]byte, error) {
	f.gotOpts = opts
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func xlsxBytes(t *testing.T, sheet string, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3, "blank line is skipped")

	apples := rows[0]
	assert.Equal(t, 2, apples.Line)
	assert.Equal(t, "Apples", apples.Fruit)
	require.NotNil(t, apples.CupEquivalentPrice)
	assert.Equal(t, 0.4094, *apples.CupEquivalentPrice)
	assert.Equal(t, 0.9, *apples.Yield)

	kiwi := rows[1]
	assert.Empty(t, kiwi.Form)
	assert.Nil(t, kiwi.CupEquivalentPrice)
	assert.Empty(t, kiwi.ParseErrors)

	bad := rows[2]
	assert.Equal(t, 4, bad.Line)
	require.Len(t, bad.ParseErrors, 1)
	assert.Contains(t, bad.ParseErrors[0], "RetailPrice")
}

func TestReadCSV_NonFiniteCells(t *testing.T) {
	csv := "Fruit,RetailPrice,Yield,CupEquivalentSize,CupEquivalentPrice\n" +
		"Kiwi,2.1,0.76,0.3,NaN\n" +
		"Mango,+Inf,0.7,0.36,1.2\n" +
		"Pears,1.5,0.9,Infinity,\n" +
		"Plums,1.8,0.94,0.36,0.69\n"

	rows, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for i, col := range []string{"CupEquivalentPrice", "RetailPrice", "CupEquivalentSize"} {
		require.Len(t, rows[i].ParseErrors, 1, rows[i].Fruit)
		assert.Contains(t, rows[i].ParseErrors[0], col)
		assert.Contains(t, rows[i].ParseErrors[0], "not a finite number")
	}
	assert.Empty(t, rows[3].ParseErrors)

	_, err = parseNumber("-inf")
	assert.ErrorIs(t, err, errNotFinite)
}

func TestReadCSV_HeaderVariants(t *testing.T) {
	csv := "\ufeffITEM,retail_price,yield,Cup Equivalent Size\nPeas,$1.25,1,0.5\n"
	rows, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Peas", rows[0].Fruit)
	assert.Equal(t, 1.25, *rows[0].RetailPrice)
}

func TestReadCSV_MissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Fruit,RetailPrice,CupEquivalentSize\nApples,1,1\n"))
	assert.ErrorIs(t, err, types.ErrMissingColumn)
	assert.ErrorContains(t, err, "yield")

	_, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, types.ErrMissingColumn)
}

func TestReadXLSX(t *testing.T) {
	data := xlsxBytes(t, "Prices", [][]interface{}{
		{"Fruit", "RetailPrice", "Yield", "CupEquivalentSize"},
		{"Apples", 1.5, 0.9, 0.25},
		{"Kiwi", 2.1, 0.76, 0.3},
	})

	rows, err := ReadXLSX(strings.NewReader(string(data)), "Prices")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Kiwi", rows[1].Fruit)
	assert.InDelta(t, 0.76, *rows[1].Yield, 1e-12)

	_, err = ReadXLSX(strings.NewReader(string(data)), "Missing")
	assert.Error(t, err)
}

func TestLoadRows_LocalFiles(t *testing.T) {
	repo := NewDatasetRepository(nil)
	ctx := context.Background()

	rows, err := repo.LoadRows(ctx, repository.DatasetRequest{Source: writeTemp(t, "prices.csv", []byte(sampleCSV))})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	xlsx := xlsxBytes(t, "Sheet1", [][]interface{}{
		{"Fruit", "RetailPrice", "Yield", "CupEquivalentSize"},
		{"Apples", 1.5, 0.9, 0.25},
	})
	rows, err = repo.LoadRows(ctx, repository.DatasetRequest{Source: writeTemp(t, "prices.XLSX", xlsx)})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLoadRows_Errors(t *testing.T) {
	repo := NewDatasetRepository(nil)
	ctx := context.Background()

	_, err := repo.LoadRows(ctx, repository.DatasetRequest{})
	assert.ErrorIs(t, err, types.ErrNoDatasetSource)

	_, err = repo.LoadRows(ctx, repository.DatasetRequest{Source: writeTemp(t, "prices.txt", []byte(sampleCSV))})
	assert.ErrorIs(t, err, types.ErrUnsupportedSource)

	_, err = repo.LoadRows(ctx, repository.DatasetRequest{Source: filepath.Join(t.TempDir(), "missing.csv")})
	assert.ErrorContains(t, err, "error accessing dataset file")

	_, err = repo.LoadRows(ctx, repository.DatasetRequest{Source: "s3://bucket/prices.csv"})
	assert.ErrorIs(t, err, types.ErrUnsupportedSource)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = repo.LoadRows(cancelled, repository.DatasetRequest{Source: "prices.csv"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadRows_S3(t *testing.T) {
	store := &fakeStore{objects: map[string][]byte{"market/2024/prices.csv": []byte(sampleCSV)}}
	repo := NewDatasetRepository(store)

	opts := repository.S3Options{Profile: "analytics", Endpoint: "http://localhost:9000"}
	rows, err := repo.LoadRows(context.Background(), repository.DatasetRequest{
		Source: "s3://market/2024/prices.csv",
		S3:     opts,
	})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, opts, store.gotOpts)

	_, err = repo.LoadRows(context.Background(), repository.DatasetRequest{Source: "s3://market/other.csv"})
	assert.ErrorContains(t, err, "not found")
}
