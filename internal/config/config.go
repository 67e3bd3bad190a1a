package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		// AccessTTLMinutes - время жизни access токена (60 минут)
		AccessTTLMinutes int `yaml:"access_ttl_minutes"`
		// RefreshTTLDays - время жизни refresh токена. 3600 дней,
		// фактически бессрочный и без отзыва на стороне сервера.
		RefreshTTLDays int `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	Reset struct {
		// CodeTTLMinutes - окно свежести кода сброса пароля (5 минут)
		CodeTTLMinutes int `yaml:"code_ttl_minutes"`
	} `yaml:"reset"`

	Upload UploadConfig `yaml:"upload"`
}

// UploadConfig - настройки загрузки иконок; передается хендлеру целиком.
type UploadConfig struct {
	IconPath string `yaml:"icon_path"`
	// MaxIconSize в байтах
	MaxIconSize int64 `yaml:"max_icon_size"`
}

// Load читает config.yaml либо переменные окружения (режим теста).
// Возвращает явную структуру: она передается конструкторам,
// глобального синглтона настроек нет.
func Load() *Config {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		return &cfg
	}

	// Загрузка из переменных окружения (режим теста)
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "test@fleamarket.local"

	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.AccessTTLMinutes == 0 {
		cfg.JWT.AccessTTLMinutes = 60
	}
	if cfg.JWT.RefreshTTLDays == 0 {
		cfg.JWT.RefreshTTLDays = 3600
	}
	if cfg.Reset.CodeTTLMinutes == 0 {
		cfg.Reset.CodeTTLMinutes = 5
	}
	if cfg.Upload.IconPath == "" {
		cfg.Upload.IconPath = "./static"
	}
	if cfg.Upload.MaxIconSize == 0 {
		cfg.Upload.MaxIconSize = 2048 * 2048
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
}
