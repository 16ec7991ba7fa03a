package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shivamratti13/youtube-comment-analysis/internal/charts"
	"github.com/shivamratti13/youtube-comment-analysis/internal/models"
	"github.com/shivamratti13/youtube-comment-analysis/internal/textclean"
	"github.com/shivamratti13/youtube-comment-analysis/internal/youtube"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingURL     = errors.New("video url is required")
	ErrInvalidVideoID = errors.New("video id could not be extracted")
	ErrCommentFetch   = errors.New("comment fetch failed")
	ErrClassification = errors.New("classification failed")
)

// VideoSource provides metadata and paged top-level comments
type VideoSource interface {
	FetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error)
	ForEachCommentPage(ctx context.Context, videoID string, limit int, fn func(page []string) error) (bool, error)
}

// SentimentClassifier labels one cleaned comment
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (models.SentimentLabel, float64, error)
}

// Analyzer runs the URL → metadata → comments → clean → classify → tally pipeline
type Analyzer struct {
	video       VideoSource
	classifier  SentimentClassifier
	maxComments int
	logger      *zap.Logger
}

// NewAnalyzer creates a new analyzer service
func NewAnalyzer(
	video VideoSource,
	classifier SentimentClassifier,
	maxComments int,
	logger *zap.Logger,
) *Analyzer {
	return &Analyzer{
		video:       video,
		classifier:  classifier,
		maxComments: maxComments,
		logger:      logger,
	}
}

// Analyze runs the whole pipeline for one submitted URL.
// Any failure aborts the remaining stages; there is no partial result.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*models.Analysis, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrMissingURL
	}

	videoID := youtube.ExtractVideoID(rawURL)
	if videoID == "" {
		return nil, ErrInvalidVideoID
	}

	started := time.Now()
	a.logger.Info("Analysis started", zap.String("video_id", videoID))

	meta, err := a.video.FetchMetadata(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}

	var records []models.CommentRecord
	truncated, err := a.video.ForEachCommentPage(ctx, videoID, a.maxComments, func(page []string) error {
		for _, raw := range page {
			cleaned := textclean.Clean(raw)

			label, score, err := a.classifier.Classify(ctx, cleaned)
			if err != nil {
				return fmt.Errorf("%w: comment %d: %v", ErrClassification, len(records), err)
			}

			records = append(records, models.CommentRecord{
				Raw:       raw,
				Cleaned:   cleaned,
				Sentiment: label,
				Score:     score,
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrClassification) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCommentFetch, err)
	}

	tally := charts.NewTally(records)

	analysis := &models.Analysis{
		ID:                uuid.New().String(),
		Metadata:          meta,
		FormattedDuration: youtube.FormatDuration(meta.Duration),
		Records:           records,
		Tally:             tally.Entries(),
		Truncated:         truncated,
		CreatedAt:         time.Now(),
	}

	a.logger.Info("Analysis completed",
		zap.String("analysis_id", analysis.ID),
		zap.String("video_id", videoID),
		zap.Int("comments", len(records)),
		zap.Bool("truncated", truncated),
		zap.Duration("elapsed", time.Since(started)))

	return analysis, nil
}
