package videosearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleSearchBody = `{
  "items": [
    {
      "id": {"videoId": "abc123"},
      "snippet": {
        "title": "Intro to Fractions",
        "channelTitle": "Math Basics",
        "description": "A gentle introduction.",
        "publishedAt": "2024-05-01T10:00:00Z",
        "thumbnails": {
          "medium": {"url": "https://img.example/abc123-m.jpg"},
          "default": {"url": "https://img.example/abc123-d.jpg"}
        }
      }
    },
    {
      "id": {},
      "snippet": {"title": "channel result, no video id"}
    }
  ]
}`

func TestYouTubeSearch(t *testing.T) {
	var gotQuery, gotMax, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = q.Get("q")
		gotMax = q.Get("maxResults")
		gotKey = q.Get("key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleSearchBody))
	}))
	defer srv.Close()

	c := NewYouTubeClient("test-key", WithBaseURL(srv.URL))
	videos, err := c.Search(context.Background(), "fractions tutorial", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "fractions tutorial" || gotMax != "3" || gotKey != "test-key" {
		t.Errorf("request params: q=%q maxResults=%q key=%q", gotQuery, gotMax, gotKey)
	}

	// The item without a video id is dropped.
	if len(videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(videos))
	}
	v := videos[0]
	if v.ID != "abc123" || v.Title != "Intro to Fractions" || v.ChannelTitle != "Math Basics" {
		t.Errorf("video = %+v", v)
	}
	if v.ThumbnailURL != "https://img.example/abc123-m.jpg" {
		t.Errorf("thumbnail = %q, want medium variant", v.ThumbnailURL)
	}
	if v.URL() != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("url = %q", v.URL())
	}
}

func TestYouTubeSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewYouTubeClient("test-key", WithBaseURL(srv.URL))
	if _, err := c.Search(context.Background(), "anything", 5); err == nil {
		t.Fatal("expected error on 403 response")
	}
}
