// Package youtube talks to the YouTube Data API v3: video metadata over the
// REST endpoint and top-level comments through the generated API client.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shivamratti13/youtube-comment-analysis/internal/models"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// ErrNoMetadata is returned when the videos endpoint answers non-200 or
// with an empty item list.
var ErrNoMetadata = errors.New("no video metadata")

// Client wraps the YouTube Data API
type Client struct {
	apiKey     string
	baseURL    string
	pageSize   int64
	httpClient *http.Client
	service    *ytapi.Service
	logger     *zap.Logger
}

// Config for YouTube client
type Config struct {
	APIKey   string
	BaseURL  string // Default: https://www.googleapis.com
	PageSize int64  // commentThreads maxResults, capped at 100
}

// NewClient creates a new YouTube client
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		cfg.PageSize = 100
	}

	service, err := ytapi.NewService(ctx,
		option.WithAPIKey(cfg.APIKey),
		option.WithEndpoint(cfg.BaseURL+"/"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	logger.Info("YouTube client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.Int64("page_size", cfg.PageSize))

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		pageSize:   cfg.PageSize,
		httpClient: &http.Client{},
		service:    service,
		logger:     logger,
	}, nil
}

// videosResponse mirrors the fields of /youtube/v3/videos we read.
// Statistics stay pointers: hidden counters are omitted, not zero.
type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			LikeCount    *string `json:"likeCount"`
			CommentCount *string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// FetchMetadata retrieves title, upload date, duration and counters for a video
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	query := url.Values{}
	query.Set("part", "snippet,contentDetails,statistics")
	query.Set("id", videoID)
	query.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/youtube/v3/videos?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Videos endpoint returned non-200",
			zap.String("video_id", videoID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("%w: status %d", ErrNoMetadata, resp.StatusCode)
	}

	var data videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode videos response: %w", err)
	}

	if len(data.Items) == 0 {
		return nil, fmt.Errorf("%w: empty items for %q", ErrNoMetadata, videoID)
	}

	item := data.Items[0]
	uploadDate, _, _ := strings.Cut(item.Snippet.PublishedAt, "T")

	return &models.VideoMetadata{
		ID:           videoID,
		Title:        item.Snippet.Title,
		UploadDate:   uploadDate,
		Duration:     item.ContentDetails.Duration,
		Likes:        parseCount(item.Statistics.LikeCount),
		Comments:     parseCount(item.Statistics.CommentCount),
		ThumbnailURL: ThumbnailURL(videoID),
	}, nil
}

func parseCount(raw *string) models.Count {
	if raw == nil {
		return models.Count{}
	}
	v, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return models.Count{}
	}
	return models.KnownCount(v)
}

// Comments returns a lazy pager over the video's top-level comments.
// limit caps the total number of comments; 0 disables the cap.
func (c *Client) Comments(videoID string, limit int) *CommentPager {
	return &CommentPager{
		service:  c.service,
		videoID:  videoID,
		pageSize: c.pageSize,
		limit:    limit,
	}
}

// ForEachCommentPage feeds fn one page of comments at a time.
// It reports whether the cap cut the sequence short.
func (c *Client) ForEachCommentPage(ctx context.Context, videoID string, limit int, fn func(page []string) error) (bool, error) {
	pager := c.Comments(videoID, limit)
	pages := 0
	for {
		page, err := pager.Next(ctx)
		if errors.Is(err, Done) {
			break
		}
		if err != nil {
			return false, err
		}
		pages++
		if err := fn(page); err != nil {
			return false, err
		}
	}

	c.logger.Debug("Comment pagination finished",
		zap.String("video_id", videoID),
		zap.Int("pages", pages),
		zap.Int("comments", pager.Fetched()),
		zap.Bool("truncated", pager.Truncated()))

	return pager.Truncated(), nil
}

// FetchComments drains every page into one ordered slice
func (c *Client) FetchComments(ctx context.Context, videoID string, limit int) ([]string, bool, error) {
	var comments []string
	truncated, err := c.ForEachCommentPage(ctx, videoID, limit, func(page []string) error {
		comments = append(comments, page...)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return comments, truncated, nil
}
