package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("Content = %s, want ok payload", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetryConfig(5))

	_, err := p.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, want ErrInvalidResponse after single retry", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2 (one retry only)", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}
