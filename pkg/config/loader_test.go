package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djedproject/formatter/pkg/config"
)

type defaultsConfig struct {
	Name    string `env:"CONFIG_DEFAULTS_NAME" envDefault:"fallback"`
	Retries int    `env:"CONFIG_DEFAULTS_RETRIES" envDefault:"3"`
	Enabled bool   `env:"CONFIG_DEFAULTS_ENABLED" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_CACHED_VALUE"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Name     string   `env:"CONFIG_TEST_NAME"`
	List     []string `env:"CONFIG_TEST_LIST" envSeparator:","`
	Quoted   string   `env:"CONFIG_TEST_QUOTED"`
	Priority string   `env:"CONFIG_TEST_PRIORITY"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, defaultsConfig{Name: "fallback", Retries: 3, Enabled: true}, cfg)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFIG_DEFAULTS_NAME", "custom")
		t.Setenv("CONFIG_DEFAULTS_RETRIES", "7")
		t.Setenv("CONFIG_DEFAULTS_ENABLED", "false")

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, defaultsConfig{Name: "custom", Retries: 7, Enabled: false}, cfg)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
		require.ErrorIs(t, config.ForceReload(cfg), config.ErrNilPointer)
	})

	t.Run("missing required value is retried", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })

		t.Setenv("CONFIG_REQUIRED_VALUE", "present")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "present", cfg.Value)
	})
}

func TestLoadCaching(t *testing.T) {
	config.ResetCache()
	t.Setenv("CONFIG_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	require.NoError(t, config.ForceReload(&second))
	assert.Equal(t, "second", second.Value)

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)

	config.ResetCache()
	t.Setenv("CONFIG_CACHED_VALUE", "third")
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "third", third.Value)
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"CONFIG_TEST_NAME", "CONFIG_TEST_LIST", "CONFIG_TEST_QUOTED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("CONFIG_TEST_PRIORITY", "process")
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Equal(t, "process", cfg.Priority)

	require.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
