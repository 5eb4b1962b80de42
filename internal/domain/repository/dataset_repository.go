package repository

import (
	"context"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// S3Options seleciona credenciais e endpoint para leituras em S3 ou compatível (MinIO, R2).
type S3Options struct {
	Profile  string
	Region   string
	Endpoint string
}

// DatasetRequest identifies where the raw price table lives.
type DatasetRequest struct {
	// Source is a local .csv/.xlsx path or an s3://bucket/key URI.
	Source string
	// Sheet selects the workbook sheet; empty means the first one.
	Sheet string
	S3    S3Options
}

// DatasetRepository reads raw price rows from a dataset source.
type DatasetRepository interface {
	LoadRows(ctx context.Context, req DatasetRequest) ([]entity.RawPriceRow, error)
}

// ObjectStore fetches dataset objects from S3 or an S3-compatible store.
type ObjectStore interface {
	GetObject(ctx context.Context, opts S3Options, bucket, key string) ([]byte, error)
}
