package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// SentimentLabel is the final label shown for a comment
type SentimentLabel string

const (
	Positive SentimentLabel = "POSITIVE"
	Negative SentimentLabel = "NEGATIVE"
	Neutral  SentimentLabel = "NEUTRAL"
	Unknown  SentimentLabel = "CAN'T DETECT"
)

// AllLabels lists every label in display order
var AllLabels = []SentimentLabel{Positive, Neutral, Negative, Unknown}

// Count is a statistic the API may omit (for example hidden like counts)
type Count struct {
	Value int64
	Known bool
}

// KnownCount wraps a present statistic
func KnownCount(v int64) Count {
	return Count{Value: v, Known: true}
}

func (c Count) String() string {
	if !c.Known {
		return "N/A"
	}
	return strconv.FormatInt(c.Value, 10)
}

// MarshalJSON encodes unknown counts as "N/A" and known ones as numbers
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Known {
		return json.Marshal("N/A")
	}
	return json.Marshal(c.Value)
}

// VideoMetadata describes a single video
type VideoMetadata struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	UploadDate   string `json:"upload_date"` // YYYY-MM-DD
	Duration     string `json:"duration"`    // ISO-8601, e.g. PT10M30S
	Likes        Count  `json:"likes"`
	Comments     Count  `json:"comments"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Prediction is the raw output of a sentiment model
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// CommentRecord is one fetched comment after cleaning and classification
type CommentRecord struct {
	Raw       string         `json:"comment"`
	Cleaned   string         `json:"cleaned"`
	Sentiment SentimentLabel `json:"sentiment"`
	Score     float64        `json:"score"`
}

// TallyEntry is one row of a sentiment tally
type TallyEntry struct {
	Label SentimentLabel `json:"sentiment"`
	Count int            `json:"count"`
}

// Analysis is everything rendered for one submitted URL
type Analysis struct {
	ID                string          `json:"id"`
	Metadata          *VideoMetadata  `json:"metadata"`
	FormattedDuration string          `json:"formatted_duration"`
	Records           []CommentRecord `json:"comments"`
	Tally             []TallyEntry    `json:"tally"`
	Truncated         bool            `json:"truncated"`
	CreatedAt         time.Time       `json:"created_at"`
}
