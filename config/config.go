package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	NCBI   NCBIConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
}

type NCBIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// BIOMUSIC_NCBI_API_KEY overrides ncbi.api_key
	v.SetEnvPrefix("biomusic")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("ncbi.base_url", "https://eutils.ncbi.nlm.nih.gov/entrez/eutils")
	v.SetDefault("ncbi.api_key", "")
	v.SetDefault("ncbi.timeout_seconds", 30)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
		},
		NCBI: NCBIConfig{
			BaseURL: strings.TrimSuffix(v.GetString("ncbi.base_url"), "/"),
			APIKey:  v.GetString("ncbi.api_key"),
			Timeout: time.Duration(v.GetInt("ncbi.timeout_seconds")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
	}, nil
}
