package config

import (
	"github.com/spf13/viper"

	"github.com/korthochain/dlp/pkg/logger"
)

type CfgInfo struct {
	SolverCfg *SolverConfig  `yaml:"solverCfg"`
	LogCfg    *logger.Config `yaml:"logCfg"`
	StoreCfg  *StoreConfig   `yaml:"storeCfg"`
}

type SolverConfig struct {
	// RetryLimit is the number of extra seed mutations after the first
	// failed attempt.
	RetryLimit uint  `yaml:"retrylimit"`
	Seed       int64 `yaml:"seed"`
	CacheSize  int   `yaml:"cachesize"`
	Workers    int   `yaml:"workers"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoadConfig load configuration information
func LoadConfig() (*CfgInfo, error) {
	viper := viper.New()
	viper.SetConfigName("dlpConf")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/")
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg CfgInfo
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration usable without a config file.
func DefaultConfig() *CfgInfo {
	return &CfgInfo{
		SolverCfg: &SolverConfig{
			RetryLimit: 10,
			Seed:       0,
			CacheSize:  1024,
			Workers:    4,
		},
		LogCfg:   logger.DefaultConfig(),
		StoreCfg: &StoreConfig{Path: "./data/keys.db"},
	}
}
