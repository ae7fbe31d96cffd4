package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Storage StorageConfig `yaml:"storage"`
	JWT     JWTConfig     `yaml:"jwt"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// StorageConfig selects and configures the upload backend.
// Backend is either "disk" or "s3".
type StorageConfig struct {
	Backend string     `yaml:"backend"`
	Disk    DiskConfig `yaml:"disk"`
	S3      S3Config   `yaml:"s3"`
}

// DiskConfig holds local-disk storage configuration
type DiskConfig struct {
	Dir     string `yaml:"dir"`      // directory uploads are written to
	BaseURL string `yaml:"base_url"` // public prefix the directory is served under
}

// S3Config holds object-storage configuration
type S3Config struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"` // custom endpoint for S3-compatible providers
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file and applies environment
// overrides on top of it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		c.Storage.S3.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		c.Storage.S3.SecretKey = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "aeroclub"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "disk"
	}
	if c.Storage.Disk.Dir == "" {
		c.Storage.Disk.Dir = "uploads"
	}
	if c.Storage.Disk.BaseURL == "" {
		c.Storage.Disk.BaseURL = "/uploads"
	}
}
