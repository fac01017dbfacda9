package videosearch

import "context"

// MockSearcher is a canned Searcher for tests.
type MockSearcher struct {
	Videos  []Video
	Err     error
	Queries []string
}

// Search records the query and returns the canned result.
func (m *MockSearcher) Search(_ context.Context, query string, maxResults int) ([]Video, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Videos) > maxResults {
		return m.Videos[:maxResults], nil
	}
	return m.Videos, nil
}
