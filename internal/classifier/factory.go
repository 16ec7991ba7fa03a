package classifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ProviderConfig selects and configures one backend
type ProviderConfig struct {
	Type      ProviderType
	ModelName string
	Endpoint  string
	APIKey    string
	CacheSize int // 0 disables the prediction cache
}

// NewProvider builds the configured backend, wrapped in a cache when enabled
func NewProvider(ctx context.Context, cfg ProviderConfig, logger *zap.Logger) (Provider, error) {
	var provider Provider
	var err error

	switch cfg.Type {
	case ProviderHuggingFace:
		provider, err = NewHuggingFaceClient(HuggingFaceConfig{
			Endpoint:  cfg.Endpoint,
			ModelName: cfg.ModelName,
			APIKey:    cfg.APIKey,
		}, logger)
	case ProviderGemini:
		provider, err = NewGeminiClient(ctx, GeminiConfig{
			APIKey:    cfg.APIKey,
			ModelName: cfg.ModelName,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown classifier provider %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheSize > 0 {
		cached, err := NewCachedProvider(provider, cfg.CacheSize, logger)
		if err != nil {
			provider.Close()
			return nil, err
		}
		logger.Info("Prediction cache enabled", zap.Int("size", cfg.CacheSize))
		return cached, nil
	}

	return provider, nil
}
