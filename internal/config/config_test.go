package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MODEL_PATH", "")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "salary_model.json", cfg.Model.Path)
	assert.Equal(t, 50.0, cfg.Model.HighYearsThreshold)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "https://api.render.com/v1", cfg.Render.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Render.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Render.URLDelay)
	assert.Equal(t, "salary-prediction-api", cfg.Render.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MODEL_PATH", "/models/salary.json")
	t.Setenv("MODEL_HIGH_YEARS_THRESHOLD", "40")
	t.Setenv("RENDER_API_KEY", "rnd_secret")
	t.Setenv("RENDER_TIMEOUT", "not-a-duration")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/models/salary.json", cfg.Model.Path)
	assert.Equal(t, 40.0, cfg.Model.HighYearsThreshold)
	assert.Equal(t, "rnd_secret", cfg.Render.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Render.Timeout)
}

func TestLoad_PortFromPlatform(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "10000")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Server.Port)
}
