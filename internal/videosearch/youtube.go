package videosearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// YouTubeClient searches the YouTube Data API v3.
type YouTubeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// YouTubeOption customizes a YouTubeClient.
type YouTubeOption func(*YouTubeClient)

// WithBaseURL points the client at a different endpoint. Used by tests.
func WithBaseURL(base string) YouTubeOption {
	return func(c *YouTubeClient) { c.baseURL = base }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) YouTubeOption {
	return func(c *YouTubeClient) { c.client = client }
}

// NewYouTubeClient creates a client with the given API key.
func NewYouTubeClient(apiKey string, opts ...YouTubeOption) *YouTubeClient {
	c := &YouTubeClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string    `json:"title"`
			ChannelTitle string    `json:"channelTitle"`
			Description  string    `json:"description"`
			PublishedAt  time.Time `json:"publishedAt"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search queries the API for embeddable videos matching the query.
func (c *YouTubeClient) Search(ctx context.Context, query string, maxResults int) ([]Video, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoEmbeddable", "true")
	params.Set("safeSearch", "strict")
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("video search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("video search: status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	videos := make([]Video, 0, len(sr.Items))
	for _, item := range sr.Items {
		if item.ID.VideoID == "" {
			continue
		}
		thumb := item.Snippet.Thumbnails.Medium.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			ThumbnailURL: thumb,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
