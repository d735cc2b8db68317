package analyzer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/cache"
	"github.com/lmdrew96/chaoslimba/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newComparator(embedder llm.Embedder) *EmbeddingComparator {
	return NewSemanticComparator(embedder, cache.NewTTL[[]float32](time.Minute, 100), testLogger())
}

func TestCompareIdenticalVectors(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.SetEmbedding("hola mundo", []float32{0.5, 0.5, 0})
	mock.SetEmbedding("hola mundo otra vez", []float32{0.5, 0.5, 0})

	c := newComparator(mock)
	res, err := c.Compare(context.Background(), "hola mundo", "hola mundo otra vez", 0.75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Similarity-1.0) > 1e-6 {
		t.Fatalf("similarity = %v, want 1.0", res.Similarity)
	}
	if !res.SemanticMatch {
		t.Fatal("expected semantic match at similarity 1.0")
	}
	if res.FallbackMethod != "" {
		t.Fatalf("unexpected fallback: %q", res.FallbackMethod)
	}
}

func TestCompareOrthogonalVectors(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.SetEmbedding("a", []float32{1, 0, 0})
	mock.SetEmbedding("b", []float32{0, 1, 0})

	c := newComparator(mock)
	res, err := c.Compare(context.Background(), "a", "b", 0.75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Similarity != 0 {
		t.Fatalf("similarity = %v, want 0", res.Similarity)
	}
	if res.SemanticMatch {
		t.Fatal("unexpected semantic match for orthogonal vectors")
	}
}

func TestCompareCachesEmbeddings(t *testing.T) {
	mock := llm.NewMockProvider()
	c := newComparator(mock)

	if _, err := c.Compare(context.Background(), "x", "y", 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Compare(context.Background(), "x", "y", 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.EmbedCalls) != 1 {
		t.Fatalf("embedder called %d times, want 1", len(mock.EmbedCalls))
	}
}

func TestCompareFallsBackOnEmbedError(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.FailEmbeddings(errors.New("backend down"))

	c := newComparator(mock)
	res, err := c.Compare(context.Background(), "the red cat", "the red cat", 0.5)
	if err != nil {
		t.Fatalf("fallback path returned error: %v", err)
	}
	if res.FallbackMethod != FallbackLexical {
		t.Fatalf("FallbackMethod = %q, want %q", res.FallbackMethod, FallbackLexical)
	}
	if res.Similarity != 1.0 {
		t.Fatalf("lexical similarity of identical texts = %v, want 1.0", res.Similarity)
	}
}

func TestCompareNilEmbedderUsesLexical(t *testing.T) {
	c := newComparator(nil)
	res, err := c.Compare(context.Background(), "uno dos tres", "cuatro cinco seis", 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FallbackMethod != FallbackLexical {
		t.Fatalf("FallbackMethod = %q, want %q", res.FallbackMethod, FallbackLexical)
	}
	if res.Similarity != 0 {
		t.Fatalf("similarity of disjoint texts = %v, want 0", res.Similarity)
	}
}

func TestLexicalSimilarityIgnoresCaseAndPunctuation(t *testing.T) {
	sim := lexicalSimilarity("Hola, mundo!", "hola mundo")
	if sim != 1.0 {
		t.Fatalf("similarity = %v, want 1.0", sim)
	}
}
