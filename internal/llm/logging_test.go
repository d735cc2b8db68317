package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/lmdrew96/chaoslimba/internal/store"
)

type fakeEventRepo struct {
	events    []store.LLMRequestEventData
	appendErr error
}

func (f *fakeEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(ctx context.Context, id int) (*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingRecordsEvent(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	})
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	ctx := WithPurpose(context.Background(), "grammar")
	if _, err := p.Generate(ctx, Request{MaxTokens: 100}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "grammar" {
		t.Errorf("Purpose = %q, want grammar", e.Purpose)
	}
	if !e.Success || e.InputTokens != 10 || e.OutputTokens != 5 {
		t.Errorf("event = %+v, want success with 10/5 tokens", e)
	}
}

func TestLoggingSwallowsAppendFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	repo := &fakeEventRepo{appendErr: errors.New("disk full")}
	var buf bytes.Buffer
	p := WithLogging(mock, repo, slog.New(slog.NewTextHandler(&buf, nil)))

	resp, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp == nil {
		t.Fatal("no response despite successful generation")
	}
	if !strings.Contains(buf.String(), "llm request event append failed") {
		t.Errorf("append failure not logged, got %q", buf.String())
	}
}
