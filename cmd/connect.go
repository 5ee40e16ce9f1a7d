package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/alexkyllo/kqlalchemy/pkg/engine"
	"github.com/alexkyllo/kqlalchemy/pkg/logger"
)

// engineConfig assembles the connection config from viper (flags, env,
// config file).
func engineConfig() (engine.Config, error) {
	// key spellings match engine.Config's yaml/json tags, so a config
	// file written for engine.LoadConfig works here unchanged
	cfg := engine.Config{
		Cluster:      viper.GetString("cluster"),
		Database:     viper.GetString("database"),
		TenantID:     viper.GetString("tenantId"),
		ClientID:     viper.GetString("clientId"),
		ClientSecret: viper.GetString("clientSecret"),
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, errors.Wrap(err, "incomplete connection settings")
	}
	return cfg, nil
}

// credential picks a service-principal credential when the config carries
// one and falls back to the ambient credential chain otherwise.
func credential(cfg engine.Config) (azcore.TokenCredential, error) {
	if cfg.TenantID != "" && cfg.ClientID != "" && cfg.ClientSecret != "" {
		slog.Debug("using client secret credential", "tenant", cfg.TenantID, "client", cfg.ClientID)
		cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
		return cred, errors.Wrap(err, "building client secret credential")
	}
	slog.Debug("using default azure credential chain")
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	return cred, errors.Wrap(err, "building default azure credential")
}

// openEngine initializes logging and opens the engine from CLI settings.
func openEngine(ctx context.Context) (*engine.Engine, error) {
	logLevel := slog.LevelInfo
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	}
	logger.NewWithLevel(logLevel).SetDefault()

	cfg, err := engineConfig()
	if err != nil {
		return nil, err
	}
	cred, err := credential(cfg)
	if err != nil {
		return nil, err
	}
	return engine.Open(ctx, cfg, cred)
}

// printResult renders v to stdout in the requested format.
func printResult(v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}
