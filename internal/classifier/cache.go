package classifier

import (
	"context"
	"fmt"

	"github.com/shivamratti13/youtube-comment-analysis/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// CachedProvider memoises predictions by exact input text
type CachedProvider struct {
	provider Provider
	cache    *lru.Cache[string, models.Prediction]
	logger   *zap.Logger
}

// NewCachedProvider wraps provider with an LRU of size entries
func NewCachedProvider(provider Provider, size int, logger *zap.Logger) (*CachedProvider, error) {
	cache, err := lru.New[string, models.Prediction](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction cache: %w", err)
	}

	return &CachedProvider{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}, nil
}

func (p *CachedProvider) Classify(ctx context.Context, text string) (*models.Prediction, error) {
	if pred, ok := p.cache.Get(text); ok {
		return &pred, nil
	}

	pred, err := p.provider.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	p.cache.Add(text, *pred)
	return pred, nil
}

func (p *CachedProvider) Close() error {
	p.cache.Purge()
	return p.provider.Close()
}

func (p *CachedProvider) GetModelInfo() map[string]interface{} {
	info := p.provider.GetModelInfo()
	info["cache_entries"] = p.cache.Len()
	return info
}
