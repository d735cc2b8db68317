package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider and Embedder for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu         sync.Mutex
	responses  []MockResponse
	embeddings map[string][]float32
	embedErr   error
	Calls      []Request
	EmbedCalls [][]string
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{
		responses:  responses,
		embeddings: make(map[string][]float32),
	}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// Embed returns canned vectors registered with SetEmbedding, or a unit
// vector for unknown texts so cosine math stays well defined in tests.
func (m *MockProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.EmbedCalls = append(m.EmbedCalls, texts)

	if m.embedErr != nil {
		return nil, m.embedErr
	}

	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := m.embeddings[t]; ok {
			out[i] = v
		} else {
			out[i] = []float32{1, 0, 0}
		}
	}
	return out, nil
}

// SetEmbedding registers a canned vector for a text.
func (m *MockProvider) SetEmbedding(text string, vec []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embeddings[text] = vec
}

// FailEmbeddings makes all Embed calls return err.
func (m *MockProvider) FailEmbeddings(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embedErr = err
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// EmbeddingModelID returns "mock-embedding".
func (m *MockProvider) EmbeddingModelID() string {
	return "mock-embedding"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
