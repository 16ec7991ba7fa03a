package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shivamratti13/youtube-comment-analysis/internal/models"

	"go.uber.org/zap"
)

// HuggingFaceClient calls a hosted text-classification model
type HuggingFaceClient struct {
	baseURL    string
	modelName  string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// HuggingFaceConfig for the inference endpoint
type HuggingFaceConfig struct {
	Endpoint  string // Default: https://api-inference.huggingface.co
	ModelName string
	APIKey    string // Optional bearer token
}

type inferenceRequest struct {
	Inputs  string                 `json:"inputs"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// NewHuggingFaceClient creates a new inference client
func NewHuggingFaceClient(cfg HuggingFaceConfig, logger *zap.Logger) (*HuggingFaceClient, error) {
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("model name is required")
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api-inference.huggingface.co"
	}

	logger.Info("Inference client initialized",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("model", cfg.ModelName))

	return &HuggingFaceClient{
		baseURL:   strings.TrimRight(cfg.Endpoint, "/"),
		modelName: cfg.ModelName,
		apiKey:    cfg.APIKey,
		// Cold model loads can take a while
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}, nil
}

// Classify returns the highest-scoring label for text
func (c *HuggingFaceClient) Classify(ctx context.Context, text string) (*models.Prediction, error) {
	jsonData, err := json.Marshal(inferenceRequest{
		Inputs:  text,
		Options: map[string]interface{}{"wait_for_model": true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+c.modelName, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	return parseInferenceResponse(body)
}

// parseInferenceResponse accepts both [[{label,score}...]] and [{label,score}...]
func parseInferenceResponse(body []byte) (*models.Prediction, error) {
	var candidates []models.Prediction

	var nested [][]models.Prediction
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) > 0 {
			candidates = nested[0]
		}
	} else if err := json.Unmarshal(body, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("empty prediction list")
	}

	best := candidates[0]
	for _, p := range candidates[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	best.Label = strings.ToUpper(best.Label)

	return &best, nil
}

// Close is a no-op for the HTTP client
func (c *HuggingFaceClient) Close() error {
	return nil
}

// GetModelInfo returns model information
func (c *HuggingFaceClient) GetModelInfo() map[string]interface{} {
	return map[string]interface{}{
		"provider": string(ProviderHuggingFace),
		"model":    c.modelName,
		"endpoint": c.baseURL,
	}
}
