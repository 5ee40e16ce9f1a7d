package engine

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes the cluster connection the engine is built from.
type Config struct {
	// Cluster is the bare cluster name, e.g. "help" for
	// help.kusto.windows.net.
	Cluster  string `yaml:"cluster" json:"cluster"`
	Database string `yaml:"database" json:"database"`

	// Optional service-principal fields; when unset the caller supplies a
	// credential from the ambient environment instead.
	TenantID     string `yaml:"tenantId,omitempty" json:"tenantId,omitempty"`
	ClientID     string `yaml:"clientId,omitempty" json:"clientId,omitempty"`
	ClientSecret string `yaml:"clientSecret,omitempty" json:"clientSecret,omitempty"`
}

// ClusterURL returns the https endpoint for management commands.
func (c *Config) ClusterURL() string {
	return "https://" + c.Cluster + kustoDomain
}

// DSN returns the bridge connection URL for the configured cluster.
func (c *Config) DSN() string {
	return BuildDSN(c.Cluster, c.Database)
}

// Validate checks the fields required to open a connection.
func (c *Config) Validate() error {
	if c.Cluster == "" {
		return errors.New("cluster is required")
	}
	if c.Database == "" {
		return errors.New("database is required")
	}
	return nil
}

// LoadConfig reads a config file, trying YAML first and then JSON.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", filename)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Debug("YAML unmarshal failed, trying JSON", "error", err)
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file: %s", filename)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", filename)
	}
	return &cfg, nil
}
