package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/lmdrew96/chaoslimba/internal/cache"
	"github.com/lmdrew96/chaoslimba/internal/llm"
)

// FallbackLexical marks a comparison made without embeddings.
const FallbackLexical = "lexical"

// EmbeddingComparator implements SemanticComparator with cosine similarity
// over provider embeddings. When the embedder fails it falls back to a
// lexical token-overlap measure and marks the result accordingly.
type EmbeddingComparator struct {
	embedder llm.Embedder
	cache    cache.Cache[[]float32]
	logger   *slog.Logger
}

// NewSemanticComparator creates a comparator using the given embedder and
// vector cache. embedder may be nil, in which case every comparison uses
// the lexical fallback.
func NewSemanticComparator(embedder llm.Embedder, c cache.Cache[[]float32], logger *slog.Logger) *EmbeddingComparator {
	return &EmbeddingComparator{embedder: embedder, cache: c, logger: logger}
}

func (c *EmbeddingComparator) Compare(ctx context.Context, userText, expectedText string, threshold float64) (*SemanticResult, error) {
	if c.embedder != nil {
		sim, err := c.embeddingSimilarity(ctx, userText, expectedText)
		if err == nil {
			return &SemanticResult{
				Similarity:    sim,
				SemanticMatch: sim >= threshold,
			}, nil
		}
		c.logger.Warn("embedding comparison failed, using lexical fallback", "error", err)
	}

	sim := lexicalSimilarity(userText, expectedText)
	return &SemanticResult{
		Similarity:     sim,
		SemanticMatch:  sim >= threshold,
		FallbackMethod: FallbackLexical,
	}, nil
}

func (c *EmbeddingComparator) embeddingSimilarity(ctx context.Context, a, b string) (float64, error) {
	va, okA := c.cache.Get(a)
	vb, okB := c.cache.Get(b)

	var missing []string
	if !okA {
		missing = append(missing, a)
	}
	if !okB {
		missing = append(missing, b)
	}
	if len(missing) > 0 {
		vectors, err := c.embedder.Embed(ctx, missing)
		if err != nil {
			return 0, err
		}
		if len(vectors) != len(missing) {
			return 0, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(missing))
		}
		for i, text := range missing {
			c.cache.Set(text, vectors[i])
			if text == a {
				va = vectors[i]
			}
			if text == b {
				vb = vectors[i]
			}
		}
	}

	return cosine(va, vb), nil
}

// cosine returns the cosine similarity of two vectors, clamped to [0,1].
// Negative similarity means the texts are unrelated for our purposes.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// lexicalSimilarity is Jaccard overlap over lowercased tokens. Crude, but
// it keeps scoring alive when no embedding backend is reachable.
func lexicalSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		tok = strings.Trim(tok, ".,!?;:\"'()")
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}
