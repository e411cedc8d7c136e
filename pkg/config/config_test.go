package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantiv/isi-web/pkg/config"
)

type defaultsConfig struct {
	Name    string `env:"ISI_TEST_DEFAULT_NAME" envDefault:"isi-web"`
	Port    int    `env:"ISI_TEST_DEFAULT_PORT" envDefault:"8080"`
	Enabled bool   `env:"ISI_TEST_DEFAULT_ENABLED" envDefault:"true"`
}

type overrideConfig struct {
	Name string `env:"ISI_TEST_OVERRIDE_NAME" envDefault:"default"`
}

type requiredConfig struct {
	Secret string `env:"ISI_TEST_REQUIRED_SECRET,required"`
}

type fileConfig struct {
	FromFile string   `env:"ISI_TEST_FROM_FILE"`
	List     []string `env:"ISI_TEST_LIST" envSeparator:","`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "isi-web", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Enabled)
}

func TestLoad_EnvOverridesAndCache(t *testing.T) {
	config.ResetCache()
	t.Setenv("ISI_TEST_OVERRIDE_NAME", "first")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)

	t.Setenv("ISI_TEST_OVERRIDE_NAME", "second")
	var again overrideConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name, "cached value should be returned")

	config.ResetCache()
	var fresh overrideConfig
	require.NoError(t, config.Load(&fresh))
	assert.Equal(t, "second", fresh.Name)
}

func TestLoad_Required(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("ISI_TEST_REQUIRED_SECRET")

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("ISI_TEST_FROM_FILE")
	os.Unsetenv("ISI_TEST_LIST")
	t.Cleanup(func() {
		os.Unsetenv("ISI_TEST_FROM_FILE")
		os.Unsetenv("ISI_TEST_LIST")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.FromFile)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnv)
}
