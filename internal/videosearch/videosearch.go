// Package videosearch finds study videos for a topic. The only
// implementation talks to the YouTube Data API; screens depend on the
// Searcher interface so the summary flow works with search disabled.
package videosearch

import (
	"context"
	"time"
)

// Video is one search result.
type Video struct {
	ID           string
	Title        string
	ChannelTitle string
	Description  string
	ThumbnailURL string
	PublishedAt  time.Time
}

// URL returns the watch link for the video.
func (v Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// Searcher finds videos matching a query.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Video, error)
}
