package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	llmclient "github.com/Menach0/ai-spigot-gen/internal/llmclient"
)

type flakyClient struct {
	failures int
	calls    int
	err      error
}

func (f *flakyClient) Name() string { return "flaky" }
func (f *flakyClient) Close() error { return nil }
func (f *flakyClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return json.RawMessage(`{"ok":true}`), nil
}

func TestRetryRecoversFromTransientErrors(t *testing.T) {
	inner := &flakyClient{failures: 2, err: errors.New("boom")}
	cli := Wrap(inner, Retry(3, time.Millisecond))

	raw, err := cli.GenerateJSON(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Fatalf("unexpected payload: %s", raw)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyClient{failures: 10, err: errors.New("boom")}
	cli := Wrap(inner, Retry(3, time.Millisecond))

	if _, err := cli.GenerateJSON(context.Background(), "p", nil); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryDoesNotRetryPermanentErrors(t *testing.T) {
	inner := &flakyClient{failures: 10, err: llmclient.NewPermanentError(errors.New("bad request"))}
	cli := Wrap(inner, Retry(5, time.Millisecond))

	if _, err := cli.GenerateJSON(context.Background(), "p", nil); err == nil {
		t.Fatal("expected permanent error")
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single call, got %d", inner.calls)
	}
}

func TestStageFrom(t *testing.T) {
	if got := StageFrom(context.Background()); got != "-" {
		t.Fatalf("expected default stage, got %q", got)
	}
	ctx := WithStage(context.Background(), "generate")
	if got := StageFrom(ctx); got != "generate" {
		t.Fatalf("expected generate, got %q", got)
	}
}
