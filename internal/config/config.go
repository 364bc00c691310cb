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
		// AllowedOrigin is the single frontend origin CORS admits; the
		// session cookies require credentials, so no wildcard.
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"server"`

	AuthServer struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"auth_server"`

	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	Token struct {
		// Key signs both the access and the refresh token.
		Key string `yaml:"key"`
	} `yaml:"token"`

	OAuth struct {
		Kakao  ProviderConfig `yaml:"kakao"`
		Naver  ProviderConfig `yaml:"naver"`
		Google ProviderConfig `yaml:"google"`
	} `yaml:"oauth"`

	Batch struct {
		// Job interval in seconds.
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"batch"`
}

type ProviderConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables when
// DATABASE_DSN is set (test and container deployments).
func LoadConfig() {
	var cfg Config

	dsn := os.Getenv("DATABASE_DSN")

	if dsn == "" {
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

		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dsn
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Server.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	cfg.AuthServer.Port, _ = strconv.Atoi(os.Getenv("AUTH_SERVER_PORT"))
	cfg.Token.Key = os.Getenv("TOKEN_KEY")

	cfg.OAuth.Kakao = providerFromEnv("KAKAO")
	cfg.OAuth.Naver = providerFromEnv("NAVER")
	cfg.OAuth.Google = providerFromEnv("GOOGLE")

	cfg.Batch.IntervalSeconds, _ = strconv.Atoi(os.Getenv("BATCH_INTERVAL_SECONDS"))
	if cfg.Batch.IntervalSeconds == 0 {
		cfg.Batch.IntervalSeconds = 60
	}

	AppConfig = &cfg
}

func providerFromEnv(prefix string) ProviderConfig {
	return ProviderConfig{
		ClientID:     os.Getenv(prefix + "_CLIENT_ID"),
		ClientSecret: os.Getenv(prefix + "_CLIENT_SECRET"),
		RedirectURL:  os.Getenv(prefix + "_REDIRECT_URL"),
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
