package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	YouTube struct {
		APIKey      string `yaml:"api_key"`
		BaseURL     string `yaml:"base_url"`
		PageSize    int64  `yaml:"page_size"`    // commentThreads maxResults, 1-100
		MaxComments int    `yaml:"max_comments"` // 0 = fetch every page
	} `yaml:"youtube"`

	Classifier struct {
		Provider  string  `yaml:"provider"` // "huggingface" or "gemini"
		ModelName string  `yaml:"model_name"`
		Endpoint  string  `yaml:"endpoint"`
		APIKey    string  `yaml:"api_key"`
		Threshold float64 `yaml:"threshold"`
		CacheSize int     `yaml:"cache_size"`
	} `yaml:"classifier"`

	Logging struct {
		Production bool `yaml:"production"`
	} `yaml:"logging"`
}

const placeholderKey = "YOUR_API_KEY_HERE"

// LoadConfig loads configuration from YAML file
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()

	// Credentials are never committed; they come from the environment
	config.YouTube.APIKey = os.ExpandEnv(config.YouTube.APIKey)
	config.Classifier.APIKey = os.ExpandEnv(config.Classifier.APIKey)

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8501"
	}

	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = "https://www.googleapis.com"
	}

	if c.YouTube.PageSize <= 0 || c.YouTube.PageSize > 100 {
		c.YouTube.PageSize = 100
	}

	if c.Classifier.Provider == "" {
		c.Classifier.Provider = "huggingface"
	}

	// Gemini picks its own default model
	if c.Classifier.ModelName == "" && c.Classifier.Provider == "huggingface" {
		c.Classifier.ModelName = "shivamratti/my_fine_tuned_model"
	}

	if c.Classifier.Endpoint == "" {
		c.Classifier.Endpoint = "https://api-inference.huggingface.co"
	}

	if c.Classifier.Threshold == 0 {
		c.Classifier.Threshold = 0.7
	}
}

// Validate reports configuration the server cannot start with
func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" || c.YouTube.APIKey == placeholderKey {
		return fmt.Errorf("youtube api key not configured")
	}

	if c.Classifier.Threshold < 0 || c.Classifier.Threshold > 1 {
		return fmt.Errorf("classifier threshold must be within [0, 1], got %v", c.Classifier.Threshold)
	}

	if c.YouTube.MaxComments < 0 {
		return fmt.Errorf("youtube max_comments must not be negative")
	}

	if c.Classifier.CacheSize < 0 {
		return fmt.Errorf("classifier cache_size must not be negative")
	}

	return nil
}
