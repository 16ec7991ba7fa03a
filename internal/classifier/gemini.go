package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shivamratti13/youtube-comment-analysis/internal/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const geminiInstruction = `You are a binary sentiment classifier for YouTube comments.
Answer with JSON only: {"label": "POSITIVE" | "NEGATIVE", "score": <confidence between 0 and 1>}.
Use a low score when the comment carries no clear sentiment.`

// GeminiClient classifies sentiment zero-shot with a Gemini model
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	logger    *zap.Logger
}

// GeminiConfig for Gemini client
type GeminiConfig struct {
	APIKey    string
	ModelName string // Default: "gemini-2.0-flash"
}

// NewGeminiClient creates a new Gemini sentiment client
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	if cfg.ModelName == "" {
		cfg.ModelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.ModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(geminiInstruction)},
	}
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)
	model.SetMaxOutputTokens(64)

	logger.Info("Gemini client initialized", zap.String("model", cfg.ModelName))

	return &GeminiClient{
		client:    client,
		model:     model,
		modelName: cfg.ModelName,
		logger:    logger,
	}, nil
}

// Classify asks the model for a label and confidence
func (c *GeminiClient) Classify(ctx context.Context, text string) (*models.Prediction, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text("Comment: "+text))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	textPart, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response type from gemini")
	}

	return parseGeminiPrediction(string(textPart))
}

func parseGeminiPrediction(raw string) (*models.Prediction, error) {
	// Strip markdown code fences if the model adds them
	cleanJSON := strings.TrimSpace(raw)
	cleanJSON = strings.TrimPrefix(cleanJSON, "```json")
	cleanJSON = strings.TrimPrefix(cleanJSON, "```")
	cleanJSON = strings.TrimSuffix(cleanJSON, "```")
	cleanJSON = strings.TrimSpace(cleanJSON)

	var pred models.Prediction
	if err := json.Unmarshal([]byte(cleanJSON), &pred); err != nil {
		return nil, fmt.Errorf("failed to parse gemini response: %w", err)
	}
	pred.Label = strings.ToUpper(strings.TrimSpace(pred.Label))

	return &pred, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// GetModelInfo returns model information
func (c *GeminiClient) GetModelInfo() map[string]interface{} {
	return map[string]interface{}{
		"provider": string(ProviderGemini),
		"model":    c.modelName,
	}
}
