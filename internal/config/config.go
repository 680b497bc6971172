package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// BlobConfig holds blob storage settings
type BlobConfig struct {
	Root string `yaml:"root"`
}

// CatalogConfig holds file catalog settings
type CatalogConfig struct {
	PageSize int `yaml:"page_size"`
}

// ThumbnailConfig holds thumbnail generation settings
type ThumbnailConfig struct {
	Sizes       []int `yaml:"sizes"`
	Concurrency int   `yaml:"concurrency"`
}

// SessionConfig holds session settings
type SessionConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// StorageConfig holds the complete storage configuration
type StorageConfig struct {
	Blob       BlobConfig      `yaml:"blob"`
	Catalog    CatalogConfig   `yaml:"catalog"`
	Thumbnails ThumbnailConfig `yaml:"thumbnails"`
	Session    SessionConfig   `yaml:"session"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	Storage StorageConfig `yaml:"storage"`
}

// Load reads the configuration from config/storage.yaml and applies
// environment overrides and defaults.
func Load() (MainConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	var cfg MainConfig

	data, err := os.ReadFile("config/storage.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("Warning: config/storage.yaml not found, using defaults")
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// FOLDER_PATH overrides the blob root, matching the original
	// deployment contract of the service.
	if folder := config.GetEnv("FOLDER_PATH"); folder != "" {
		cfg.Storage.Blob.Root = folder
	}

	applyDefaults(&cfg)

	log.Println("Storage configuration loaded")
	return cfg, nil
}

func applyDefaults(cfg *MainConfig) {
	if cfg.Storage.Blob.Root == "" {
		cfg.Storage.Blob.Root = "/tmp/files_manager"
	}
	if cfg.Storage.Catalog.PageSize <= 0 {
		cfg.Storage.Catalog.PageSize = 20
	}
	if len(cfg.Storage.Thumbnails.Sizes) == 0 {
		cfg.Storage.Thumbnails.Sizes = []int{100, 250, 500}
	}
	if cfg.Storage.Thumbnails.Concurrency <= 0 {
		cfg.Storage.Thumbnails.Concurrency = 1
	}
	if cfg.Storage.Session.TTLSeconds <= 0 {
		cfg.Storage.Session.TTLSeconds = 86400
	}
}
