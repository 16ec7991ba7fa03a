package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shivamratti13/youtube-comment-analysis/internal/middleware"
	"github.com/shivamratti13/youtube-comment-analysis/internal/models"
	"github.com/shivamratti13/youtube-comment-analysis/internal/service"
	"github.com/shivamratti13/youtube-comment-analysis/internal/youtube"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI serves /youtube/v3/videos and /youtube/v3/commentThreads
type fakeAPI struct {
	videosStatus int
	videosBody   string
	commentsBody string
	videoCalls   int32
	commentCalls int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/youtube/v3/videos":
		atomic.AddInt32(&f.videoCalls, 1)
		if f.videosStatus != 0 {
			w.WriteHeader(f.videosStatus)
		}
		_, _ = w.Write([]byte(f.videosBody))
	case "/youtube/v3/commentThreads":
		atomic.AddInt32(&f.commentCalls, 1)
		_, _ = w.Write([]byte(f.commentsBody))
	default:
		http.NotFound(w, r)
	}
}

type countingClassifier struct {
	calls int32
}

func (c *countingClassifier) Classify(ctx context.Context, text string) (models.SentimentLabel, float64, error) {
	atomic.AddInt32(&c.calls, 1)
	if strings.Contains(text, "great") {
		return models.Positive, 0.97, nil
	}
	return models.Neutral, 0.4, nil
}

func (c *countingClassifier) GetModelInfo() map[string]interface{} {
	return map[string]interface{}{"provider": "test"}
}

const videoWithoutLikes = `{"items":[{"id":"abc","snippet":{"title":"Hidden Likes Video","publishedAt":"2024-02-01T10:00:00Z"},"contentDetails":{"duration":"PT3M"},"statistics":{"commentCount":"2"}}]}`

const twoComments = `{"items":[
 {"snippet":{"topLevelComment":{"snippet":{"textDisplay":"This is great &lt;3"}}}},
 {"snippet":{"topLevelComment":{"snippet":{"textDisplay":"first"}}}}
]}`

func setup(t *testing.T, api *fakeAPI) (*gin.Engine, *countingClassifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	yt, err := youtube.NewClient(context.Background(), youtube.Config{APIKey: "k", BaseURL: server.URL}, zap.NewNop())
	require.NoError(t, err)

	clf := &countingClassifier{}
	analyzer := service.NewAnalyzer(yt, clf, 0, zap.NewNop())

	r := gin.New()
	r.Use(middleware.RequestID())
	NewHandler(analyzer, clf, zap.NewNop()).RegisterRoutes(r)
	return r, clf
}

func postForm(r http.Handler, videoURL string) *httptest.ResponseRecorder {
	form := url.Values{"url": {videoURL}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	r, _ := setup(t, &fakeAPI{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "YouTube Video Comment Sentiment Analysis")
	assert.NotContains(t, w.Body.String(), "<iframe")
}

func TestAnalyzeForm_RendersResults(t *testing.T) {
	api := &fakeAPI{videosBody: videoWithoutLikes, commentsBody: twoComments}
	r, clf := setup(t, api)

	w := postForm(r, "https://www.youtube.com/watch?v=abc")
	body := w.Body.String()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "Hidden Likes Video")
	assert.Contains(t, body, "N/A")
	assert.Contains(t, body, "0:03:00")
	assert.Contains(t, body, "https://img.youtube.com/vi/abc/0.jpg")
	assert.Contains(t, body, "<iframe")
	assert.Contains(t, body, "POSITIVE")
	assert.Contains(t, body, "NEUTRAL")
	assert.EqualValues(t, 2, atomic.LoadInt32(&clf.calls))
}

func TestAnalyzeForm_MetadataNotFound(t *testing.T) {
	api := &fakeAPI{videosStatus: http.StatusNotFound, videosBody: `{"error":{"code":404}}`, commentsBody: twoComments}
	r, clf := setup(t, api)

	w := postForm(r, "https://www.youtube.com/watch?v=missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Error Fetching Video Details")
	assert.NotContains(t, w.Body.String(), "<iframe")
	assert.EqualValues(t, 1, atomic.LoadInt32(&api.videoCalls))
	assert.Zero(t, atomic.LoadInt32(&api.commentCalls))
	assert.Zero(t, atomic.LoadInt32(&clf.calls))
}

func TestAnalyzeForm_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		message string
	}{
		{"empty", "", "Please Enter Video URL"},
		{"no video id", "https://youtu.be/abc", "Incorrect Video Id or Error Fetching the details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			r, _ := setup(t, api)

			w := postForm(r, tt.url)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			assert.Zero(t, atomic.LoadInt32(&api.videoCalls))
		})
	}
}

func TestAnalyzeForm_CommentFailure(t *testing.T) {
	api := &fakeAPI{videosBody: videoWithoutLikes, commentsBody: `not json`}
	r, clf := setup(t, api)

	w := postForm(r, "watch?v=abc")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch comments")
	assert.NotContains(t, w.Body.String(), "<iframe")
	assert.Zero(t, atomic.LoadInt32(&clf.calls))
}

func TestAnalyzeJSON(t *testing.T) {
	api := &fakeAPI{videosBody: videoWithoutLikes, commentsBody: twoComments}
	r, _ := setup(t, api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze?url="+url.QueryEscape("watch?v=abc"), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Metadata struct {
			Title    string      `json:"title"`
			Likes    interface{} `json:"likes"`
			Comments interface{} `json:"comments"`
		} `json:"metadata"`
		Comments []struct {
			Comment   string `json:"comment"`
			Sentiment string `json:"sentiment"`
		} `json:"comments"`
		Tally []struct {
			Sentiment string `json:"sentiment"`
			Count     int    `json:"count"`
		} `json:"tally"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, "Hidden Likes Video", got.Metadata.Title)
	assert.Equal(t, "N/A", got.Metadata.Likes)
	assert.EqualValues(t, 2, got.Metadata.Comments)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "POSITIVE", got.Comments[0].Sentiment)
	assert.Len(t, got.Tally, 2)
}

func TestAnalyzeJSON_NotFound(t *testing.T) {
	r, _ := setup(t, &fakeAPI{videosBody: `{"items":[]}`})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze?url=watch%3Fv%3Dzzz", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Error Fetching Video Details"}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	r, _ := setup(t, &fakeAPI{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"provider":"test"`)
}
