package main

import (
	"context"
	"io"
	"os"

	"github.com/diwise/paranuara/internal/pkg/infrastructure/datasource"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	policyPath
)

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type Config struct {
	People    datasource.SourceConfig `yaml:"people"`
	Companies datasource.SourceConfig `yaml:"companies"`
	CORS      CORSConfig              `yaml:"cors"`
}

func DefaultConfig() *Config {
	return &Config{
		People:    datasource.SourceConfig{Path: "resources/people.json"},
		Companies: datasource.SourceConfig{Path: "resources/companies.json"},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// LoadConfiguration reads a yaml config. Settings missing from the yaml keep their defaults.
func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(buf, cfg)

	return cfg, err
}

func loadConfigurationFile(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadConfiguration(f)
}

func postgresConfigFromEnv(ctx context.Context) datasource.PostgresConfig {
	return datasource.PostgresConfig{
		Host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		User:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		Password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		Port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		DBName:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "paranuara"),
		SSLMode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

// flagsFromCommand prefers explicitly set command line flags over environment variables
func flagsFromCommand(ctx context.Context, cmd *cobra.Command) FlagMap {
	fromFlagOrEnv := func(flag, envVar, defaultValue string) string {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			return value
		}
		return env.GetVariableOrDefault(ctx, envVar, defaultValue)
	}

	return FlagMap{
		listenAddress: fromFlagOrEnv("listen", "LISTEN_ADDRESS", ""),
		servicePort:   fromFlagOrEnv("port", "SERVICE_PORT", "8080"),
		configPath:    fromFlagOrEnv("config", "PARANUARA_CONFIG_PATH", ""),
		policyPath:    fromFlagOrEnv("policies", "PARANUARA_POLICY_PATH", ""),
	}
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to a yaml file describing the dataset sources")
}
