package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"
	ytapi "google.golang.org/api/youtube/v3"
)

// Done is returned by CommentPager.Next once no page remains
var Done = iterator.Done

// CommentPager walks commentThreads one page at a time, following
// nextPageToken. It is not safe for concurrent use.
type CommentPager struct {
	service  *ytapi.Service
	videoID  string
	pageSize int64
	limit    int

	token     string
	fetched   int
	done      bool
	truncated bool
}

// Next returns the display text of the next page of top-level comments.
// Replies are never included.
func (p *CommentPager) Next(ctx context.Context) ([]string, error) {
	if p.done {
		return nil, Done
	}

	call := p.service.CommentThreads.List([]string{"snippet"}).
		VideoId(p.videoID).
		MaxResults(p.pageSize).
		Context(ctx)
	if p.token != "" {
		call = call.PageToken(p.token)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list comment threads for %q: %w", p.videoID, err)
	}

	page := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		page = append(page, item.Snippet.TopLevelComment.Snippet.TextDisplay)
	}

	p.token = resp.NextPageToken
	if p.token == "" {
		p.done = true
	}

	if p.limit > 0 && p.fetched+len(page) >= p.limit {
		if p.fetched+len(page) > p.limit || !p.done {
			p.truncated = true
		}
		page = page[:p.limit-p.fetched]
		p.done = true
	}

	p.fetched += len(page)
	return page, nil
}

// Reset rewinds the pager to the first page
func (p *CommentPager) Reset() {
	p.token = ""
	p.fetched = 0
	p.done = false
	p.truncated = false
}

// Fetched is the number of comments returned so far
func (p *CommentPager) Fetched() int {
	return p.fetched
}

// Truncated reports whether the cap stopped pagination early
func (p *CommentPager) Truncated() bool {
	return p.truncated
}
