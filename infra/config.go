package infra

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type DBConfig struct {
	Name       string `mapstructure:"db_name"`
	Host       string `mapstructure:"db_host"`
	User       string `mapstructure:"db_user"`
	Password   string `mapstructure:"db_password"`
	Port       string `mapstructure:"db_port"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Config struct {
	Env          string   `mapstructure:"env"`
	Port         string   `mapstructure:"port"`
	AutoMigrate  bool     `mapstructure:"auto_migrate"`
	TokenDBPath  string   `mapstructure:"token_db_path"`
	JWTSecretKey string   `mapstructure:"jwt_secret_key"`
	BcryptCost   int      `mapstructure:"bcrypt_cost"`
	LogLevel     string   `mapstructure:"log_level"`
	LogFile      string   `mapstructure:"log_file"`
	DB           DBConfig `mapstructure:",squash"`
}

var configKeys = []string{
	"env", "port", "auto_migrate", "token_db_path", "jwt_secret_key",
	"bcrypt_cost", "log_level", "log_file",
	"db_name", "db_host", "db_user", "db_password", "db_port", "sqlite_path",
}

// LoadConfig は環境変数（.envを含む）から設定を読み込む
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "dev")
	v.SetDefault("port", "8080")
	v.SetDefault("auto_migrate", false)
	v.SetDefault("bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("log_level", "info")
	v.SetDefault("sqlite_path", "app.db")

	// AutomaticEnvだけではUnmarshalに反映されないため明示的にバインドする
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &cfg, nil
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
