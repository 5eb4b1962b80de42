package repository

import (
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	// LoadEnv sobrepõe no cfg os valores PRODUCE_* do ambiente (e do .env, se existir).
	LoadEnv(cfg *types.Config, envFile string) (*types.Config, error)
}
