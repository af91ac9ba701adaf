package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the process configuration: an optional YAML file with
// environment-variable overrides on top.
type Config struct {
	AppName string
	Logger  *Logger
	Mongo   *Mongo
	Seed    *Seed
	Viper   *viper.Viper
}

// Logger configures the structured logger.
type Logger struct {
	Level  string
	Format string
	Output string
}

// Mongo configures the persistence connection.
type Mongo struct {
	URI      string
	Database string
}

// Load reads the configuration. configPath may be empty, in which case
// defaults and environment variables alone apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	bindEnvs(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		AppName: v.GetString("app_name"),
		Logger:  getLoggerConfig(v),
		Mongo:   getMongoConfig(v),
		Seed:    getSeedConfig(v),
		Viper:   v,
	}

	if err := cfg.Seed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "task-manager")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "task_manager")

	v.SetDefault("seed.demo_task_count", 100)
	v.SetDefault("seed.users", 20)
	v.SetDefault("seed.workspaces_per_user_min", 1)
	v.SetDefault("seed.workspaces_per_user_max", 2)
	v.SetDefault("seed.projects_per_workspace_min", 3)
	v.SetDefault("seed.projects_per_workspace_max", 6)
	v.SetDefault("seed.tasks_total", 1000)
	v.SetDefault("seed.assigned_ratio", 0.6)
	v.SetDefault("seed.due_date_ratio", 0.7)
	v.SetDefault("seed.due_days_min", -30)
	v.SetDefault("seed.due_days_max", 90)
	v.SetDefault("seed.extra_members_min", 2)
	v.SetDefault("seed.extra_members_max", 5)
	v.SetDefault("seed.max_attempts", 100)
	v.SetDefault("seed.fixtures_dir", "fixtures")
}

// bindEnvs keeps the original environment variable names working.
func bindEnvs(v *viper.Viper) {
	_ = v.BindEnv("mongo.uri", "MONGO_URI")
	_ = v.BindEnv("mongo.database", "MONGO_DATABASE")
	_ = v.BindEnv("seed.demo_task_count", "SEED_DEMO_COUNT")
	_ = v.BindEnv("seed.users", "SEED_USERS")
	_ = v.BindEnv("seed.workspaces_per_user_min", "SEED_WORKSPACES_PER_USER_MIN")
	_ = v.BindEnv("seed.workspaces_per_user_max", "SEED_WORKSPACES_PER_USER_MAX")
	_ = v.BindEnv("seed.projects_per_workspace_min", "SEED_PROJECTS_PER_WORKSPACE_MIN")
	_ = v.BindEnv("seed.projects_per_workspace_max", "SEED_PROJECTS_PER_WORKSPACE_MAX")
	_ = v.BindEnv("seed.tasks_total", "SEED_TASKS_TOTAL")
	_ = v.BindEnv("seed.assigned_ratio", "SEED_ASSIGNED_RATIO")
}

// getLoggerConfig reads logger configuration.
func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:  v.GetString("logger.level"),
		Format: v.GetString("logger.format"),
		Output: v.GetString("logger.output"),
	}
}

// getMongoConfig reads persistence configuration.
func getMongoConfig(v *viper.Viper) *Mongo {
	return &Mongo{
		URI:      v.GetString("mongo.uri"),
		Database: v.GetString("mongo.database"),
	}
}
