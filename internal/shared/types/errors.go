package types

import "errors"

var (
	ErrNoDatasetSource      = errors.New("no dataset given. Use --dataset, the config file or PRODUCE_DATASET")
	ErrUnsupportedSource    = errors.New("unsupported dataset source (expected .csv, .xlsx or s3://bucket/key)")
	ErrMissingColumn        = errors.New("dataset is missing a required column")
	ErrUnsupportedReport    = errors.New("unsupported report type (use csv, json, pdf, xlsx or sqlite)")
	ErrUnsupportedConfigExt = errors.New("unsupported config file format")
)
