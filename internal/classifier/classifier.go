// Package classifier turns cleaned comment text into a sentiment label.
package classifier

import (
	"context"
	"fmt"

	"github.com/shivamratti13/youtube-comment-analysis/internal/models"

	"go.uber.org/zap"
)

// DefaultThreshold is the confidence below which a prediction is NEUTRAL
const DefaultThreshold = 0.7

// ProviderType selects the inference backend
type ProviderType string

const (
	ProviderHuggingFace ProviderType = "huggingface"
	ProviderGemini      ProviderType = "gemini"
)

// Provider is any backend returning a binary POSITIVE/NEGATIVE prediction
type Provider interface {
	Classify(ctx context.Context, text string) (*models.Prediction, error)
	Close() error
	GetModelInfo() map[string]interface{}
}

// ApplyThreshold maps a raw prediction to the displayed label.
// Low confidence always wins; labels other than POSITIVE/NEGATIVE become
// CAN'T DETECT.
func ApplyThreshold(p models.Prediction, threshold float64) models.SentimentLabel {
	switch {
	case p.Score < threshold:
		return models.Neutral
	case p.Label == string(models.Positive):
		return models.Positive
	case p.Label == string(models.Negative):
		return models.Negative
	default:
		return models.Unknown
	}
}

// Classifier applies the confidence policy on top of a Provider
type Classifier struct {
	provider  Provider
	threshold float64
	logger    *zap.Logger
}

// New creates a classifier; a zero threshold falls back to DefaultThreshold
func New(provider Provider, threshold float64, logger *zap.Logger) *Classifier {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{
		provider:  provider,
		threshold: threshold,
		logger:    logger,
	}
}

// Classify runs one inference call and applies the threshold
func (c *Classifier) Classify(ctx context.Context, text string) (models.SentimentLabel, float64, error) {
	pred, err := c.provider.Classify(ctx, text)
	if err != nil {
		return "", 0, fmt.Errorf("sentiment inference failed: %w", err)
	}

	label := ApplyThreshold(*pred, c.threshold)
	if label == models.Unknown {
		c.logger.Warn("Model returned unexpected label",
			zap.String("label", pred.Label),
			zap.Float64("score", pred.Score))
	}

	return label, pred.Score, nil
}

// Threshold returns the configured confidence cutoff
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// GetModelInfo describes the wrapped provider
func (c *Classifier) GetModelInfo() map[string]interface{} {
	info := c.provider.GetModelInfo()
	info["threshold"] = c.threshold
	return info
}

// Close releases the provider
func (c *Classifier) Close() error {
	return c.provider.Close()
}
