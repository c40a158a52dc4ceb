package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for the context to end and returns its error.
type blockingProvider struct{}

func (b *blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout_DeadlineBecomesProviderUnavailable(t *testing.T) {
	p := WithTimeout(&blockingProvider{}, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
}

func TestWithTimeout_CallerCancellationPassesThrough(t *testing.T) {
	p := WithTimeout(&blockingProvider{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		t.Fatal("caller cancellation must not be rewritten as provider failure")
	}
}

func TestWithTimeout_FastCallUnaffected(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithTimeout(mock, time.Minute)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestWithTimeout_DisabledForNonPositive(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout should return the provider unchanged")
	}
}
