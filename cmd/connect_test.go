package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineConfig_ReadsConfigFileKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// the key spellings engine.Config documents in its yaml/json tags
	viper.Set("cluster", "help")
	viper.Set("database", "Samples")
	viper.Set("tenantId", "tid")
	viper.Set("clientId", "cid")
	viper.Set("clientSecret", "secret")

	cfg, err := engineConfig()
	require.NoError(t, err)
	assert.Equal(t, "help", cfg.Cluster)
	assert.Equal(t, "Samples", cfg.Database)
	assert.Equal(t, "tid", cfg.TenantID)
	assert.Equal(t, "cid", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
}

func TestEngineConfig_Incomplete(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("cluster", "help")
	_, err := engineConfig()
	assert.Error(t, err)
}

func TestRootFlagsBindCredentialKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, rootCmd.PersistentFlags().Set("tenant-id", "tid"))
	require.NoError(t, rootCmd.PersistentFlags().Set("client-id", "cid"))
	require.NoError(t, rootCmd.PersistentFlags().Set("client-secret", "secret"))
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("tenant-id", "")
		_ = rootCmd.PersistentFlags().Set("client-id", "")
		_ = rootCmd.PersistentFlags().Set("client-secret", "")
	})

	// rebind since viper.Reset dropped the init() bindings
	require.NoError(t, viper.BindPFlag("tenantId", rootCmd.PersistentFlags().Lookup("tenant-id")))
	require.NoError(t, viper.BindPFlag("clientId", rootCmd.PersistentFlags().Lookup("client-id")))
	require.NoError(t, viper.BindPFlag("clientSecret", rootCmd.PersistentFlags().Lookup("client-secret")))

	assert.Equal(t, "tid", viper.GetString("tenantId"))
	assert.Equal(t, "cid", viper.GetString("clientId"))
	assert.Equal(t, "secret", viper.GetString("clientSecret"))
}
