package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/produce-finops-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
	"github.com/diillson/produce-finops-dashboard-go/pkg/logger"
)

// DatasetRepositoryImpl implementa o DatasetRepository para arquivos locais e S3.
type DatasetRepositoryImpl struct {
	store repository.ObjectStore
}

// NewDatasetRepository cria o repositório; store pode ser nil quando S3 não é usado.
func NewDatasetRepository(store repository.ObjectStore) repository.DatasetRepository {
	return &DatasetRepositoryImpl{store: store}
}

// LoadRows lê a tabela bruta indicada em req.Source.
func (r *DatasetRepositoryImpl) LoadRows(ctx context.Context, req repository.DatasetRequest) ([]entity.RawPriceRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		return nil, types.ErrNoDatasetSource
	}

	log := logger.FromContext(ctx).WithField("source", source)

	var (
		data []byte
		name string
		err  error
	)
	if aws.IsS3URI(source) {
		data, name, err = r.fetchS3(ctx, source, req.S3)
	} else {
		name = source
		data, err = readLocal(source)
	}
	if err != nil {
		return nil, err
	}

	rows, err := decode(data, name, req.Sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	log.WithField("rows", len(rows)).Debug("dataset rows read")
	return rows, nil
}

func (r *DatasetRepositoryImpl) fetchS3(ctx context.Context, source string, opts repository.S3Options) ([]byte, string, error) {
	bucket, key, err := aws.ParseS3URI(source)
	if err != nil {
		return nil, "", err
	}
	if r.store == nil {
		return nil, "", fmt.Errorf("%w: S3 access is not configured", types.ErrUnsupportedSource)
	}
	data, err := r.store.GetObject(ctx, opts, bucket, key)
	if err != nil {
		return nil, "", err
	}
	return data, key, nil
}

func readLocal(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing dataset file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset file: %w", err)
	}
	return data, nil
}

// decode escolhe o leitor pela extensão do nome (arquivo local ou chave S3).
func decode(data []byte, name, sheet string) ([]entity.RawPriceRow, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return ReadCSV(bytes.NewReader(data))
	case ".xlsx", ".xlsm":
		return ReadXLSX(bytes.NewReader(data), sheet)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedSource, ext)
	}
}
