package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Resolver Resolver `yaml:"resolver"`
	Mint     Mint     `yaml:"mint"`
	Admin    Admin    `yaml:"admin"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Resolver struct {
	// GlobalResolver is the base URL of the well-known fallback resolver.
	GlobalResolver string `yaml:"globalResolver"`
	// DisableGlobalFallback turns unresolved identifiers into 404s instead
	// of redirects to GlobalResolver.
	DisableGlobalFallback bool `yaml:"disableGlobalFallback"`
	// CacheTTLSeconds bounds how long resolved targets stay in redis.
	CacheTTLSeconds int `yaml:"cacheTTLSeconds"`
}

type Mint struct {
	DefaultTemplate string `yaml:"defaultTemplate"`
}

type Admin struct {
	// Token authorizes mint and audit requests. Empty disables them.
	Token string `yaml:"token"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Resolver.GlobalResolver == "" {
		config.Resolver.GlobalResolver = "https://n2t.net"
	}
	if config.Resolver.CacheTTLSeconds == 0 {
		config.Resolver.CacheTTLSeconds = 60
	}

	return config, nil
}
