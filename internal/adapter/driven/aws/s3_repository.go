package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/produce-finops-dashboard-go/pkg/logger"
)

// maxObjectSize limita o download de um dataset (a tabela tem centenas de linhas).
const maxObjectSize = 32 << 20

// ErrInvalidS3URI is returned for sources that are not s3://bucket/key.
var ErrInvalidS3URI = errors.New("invalid S3 URI (expected s3://bucket/key)")

// S3RepositoryImpl implementa o ObjectStore com cache de configs e clientes.
type S3RepositoryImpl struct {
	cfgCache    map[string]aws.Config
	clientCache map[string]*s3.Client
	mu          sync.Mutex
	loadConfig  func(ctx context.Context, opts repository.S3Options) (aws.Config, error)
}

// NewS3Repository cria uma nova implementação do ObjectStore.
func NewS3Repository() *S3RepositoryImpl {
	return &S3RepositoryImpl{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]*s3.Client),
		loadConfig:  loadDefaultConfig,
	}
}

var _ repository.ObjectStore = (*S3RepositoryImpl)(nil)

func loadDefaultConfig(ctx context.Context, opts repository.S3Options) (aws.Config, error) {
	var loaders []func(*config.LoadOptions) error
	if opts.Profile != "" {
		loaders = append(loaders, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loaders = append(loaders, config.WithRegion(opts.Region))
	}
	return config.LoadDefaultConfig(ctx, loaders...)
}

func (r *S3RepositoryImpl) getAWSConfig(ctx context.Context, opts repository.S3Options) (aws.Config, error) {
	cacheKey := opts.Profile + "|" + opts.Region

	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[cacheKey]; ok {
		return cfg, nil
	}

	cfg, err := r.loadConfig(ctx, opts)
	if err != nil {
		profile := opts.Profile
		if profile == "" {
			profile = "default"
		}
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}
	if cfg.Region == "" {
		// S3-compatíveis (R2, MinIO) aceitam qualquer região; o SDK exige uma.
		cfg.Region = "us-east-1"
	}

	r.cfgCache[cacheKey] = cfg
	return cfg, nil
}

func (r *S3RepositoryImpl) getClient(ctx context.Context, opts repository.S3Options) (*s3.Client, error) {
	cacheKey := fmt.Sprintf("%s-%s-%s", opts.Profile, opts.Region, opts.Endpoint)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

// GetObject downloads an object fully into memory.
func (r *S3RepositoryImpl) GetObject(ctx context.Context, opts repository.S3Options, bucket, key string) ([]byte, error) {
	client, err := r.getClient(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).WithFields(map[string]interface{}{
		"bucket":   bucket,
		"key":      key,
		"endpoint": opts.Endpoint,
	}).Debug("fetching dataset object")

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *s3Types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("object s3://%s/%s not found: %w", bucket, key, err)
		}
		return nil, fmt.Errorf("error fetching s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading s3://%s/%s: %w", bucket, key, err)
	}
	if len(data) > maxObjectSize {
		return nil, fmt.Errorf("object s3://%s/%s is larger than %d bytes", bucket, key, maxObjectSize)
	}
	return data, nil
}

// IsS3URI reports whether source uses the s3:// scheme.
func IsS3URI(source string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(source)), "s3://")
}

// ParseS3URI splits s3://bucket/path/to/key into bucket and key.
func ParseS3URI(source string) (bucket, key string, err error) {
	u, err := url.Parse(strings.TrimSpace(source))
	if err != nil || !strings.EqualFold(u.Scheme, "s3") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidS3URI, source)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidS3URI, source)
	}
	return bucket, key, nil
}
