package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
)

// Variáveis de ambiente reconhecidas; listas usam vírgula como separador.
const (
	EnvDataset    = "PRODUCE_DATASET"
	EnvSheet      = "PRODUCE_SHEET"
	EnvCostSource = "PRODUCE_COST_SOURCE"
	EnvPeriod     = "PRODUCE_PERIOD"
	EnvReportType = "PRODUCE_REPORT_TYPE"
	EnvDir        = "PRODUCE_DIR"
	EnvLogLevel   = "PRODUCE_LOG_LEVEL"
	EnvLogFormat  = "PRODUCE_LOG_FORMAT"
	EnvAWSProfile = "PRODUCE_AWS_PROFILE"
	EnvAWSRegion  = "PRODUCE_AWS_REGION"
	EnvS3Endpoint = "PRODUCE_S3_ENDPOINT"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigExt, fileExtension)
	}

	return &config, nil
}

// LoadEnv sobrepõe cfg com as variáveis PRODUCE_*. Valores do processo têm precedência
// sobre os do arquivo .env; um envFile inexistente é ignorado.
func (r *ConfigRepositoryImpl) LoadEnv(cfg *types.Config, envFile string) (*types.Config, error) {
	out := types.Config{}
	if cfg != nil {
		out = *cfg
	}

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("error reading env file %s: %w", envFile, err)
		}
	}

	getEnv := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		v, ok := dotenv[key]
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	setString := func(key string, dst *string) {
		if v, ok := getEnv(key); ok {
			*dst = v
		}
	}

	setString(EnvDataset, &out.Dataset)
	setString(EnvSheet, &out.Sheet)
	setString(EnvCostSource, &out.CostSource)
	setString(EnvPeriod, &out.Period)
	setString(EnvDir, &out.Dir)
	setString(EnvLogLevel, &out.LogLevel)
	setString(EnvLogFormat, &out.LogFormat)
	setString(EnvAWSProfile, &out.AWSProfile)
	setString(EnvAWSRegion, &out.AWSRegion)
	setString(EnvS3Endpoint, &out.S3Endpoint)
	if v, ok := getEnv(EnvReportType); ok {
		out.ReportType = splitList(v)
	}

	return &out, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
