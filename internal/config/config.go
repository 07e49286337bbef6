package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Model   ModelConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
	Render  RenderConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type ModelConfig struct {
	Path               string
	HighYearsThreshold float64
}

type LoggerConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled bool
}

// RenderConfig drives the deployment helper.
type RenderConfig struct {
	APIURL       string
	APIKey       string
	Timeout      time.Duration
	ServiceName  string
	Repo         string
	Branch       string
	Region       string
	Plan         string
	Runtime      string
	BuildCommand string
	StartCommand string
	URLDelay     time.Duration
}

func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads configuration from v, which may already carry bound flags.
func LoadFrom(v *viper.Viper) (*Config, error) {
	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("MODEL_PATH", "salary_model.json")
	v.SetDefault("MODEL_HIGH_YEARS_THRESHOLD", 50.0)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("RENDER_API_URL", "https://api.render.com/v1")
	v.SetDefault("RENDER_TIMEOUT", "30s")
	v.SetDefault("RENDER_SERVICE_NAME", "salary-prediction-api")
	v.SetDefault("RENDER_REPO", "https://github.com/joshi510/mldeployment")
	v.SetDefault("RENDER_BRANCH", "main")
	v.SetDefault("RENDER_REGION", "oregon")
	v.SetDefault("RENDER_PLAN", "starter")
	v.SetDefault("RENDER_RUNTIME", "go")
	v.SetDefault("RENDER_BUILD_COMMAND", "go build -o bin/server ./cmd/server")
	v.SetDefault("RENDER_START_COMMAND", "./bin/server")
	v.SetDefault("RENDER_URL_DELAY", "5s")

	// Env. Hosting platforms hand the listen port over as PORT.
	v.AutomaticEnv()
	if err := v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Model: ModelConfig{
			Path:               v.GetString("MODEL_PATH"),
			HighYearsThreshold: v.GetFloat64("MODEL_HIGH_YEARS_THRESHOLD"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Render: RenderConfig{
			APIURL:       v.GetString("RENDER_API_URL"),
			APIKey:       v.GetString("RENDER_API_KEY"),
			Timeout:      parseDuration(v.GetString("RENDER_TIMEOUT"), 30*time.Second),
			ServiceName:  v.GetString("RENDER_SERVICE_NAME"),
			Repo:         v.GetString("RENDER_REPO"),
			Branch:       v.GetString("RENDER_BRANCH"),
			Region:       v.GetString("RENDER_REGION"),
			Plan:         v.GetString("RENDER_PLAN"),
			Runtime:      v.GetString("RENDER_RUNTIME"),
			BuildCommand: v.GetString("RENDER_BUILD_COMMAND"),
			StartCommand: v.GetString("RENDER_START_COMMAND"),
			URLDelay:     parseDuration(v.GetString("RENDER_URL_DELAY"), 5*time.Second),
		},
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
