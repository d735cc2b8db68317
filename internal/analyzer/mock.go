package analyzer

import "context"

// Mock implementations for tests and the mock LLM provider mode. Each
// returns its configured result or error verbatim.

type MockGrammar struct {
	Result *GrammarResult
	Err    error
	Calls  int
}

func (m *MockGrammar) Analyze(ctx context.Context, text string) (*GrammarResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

type MockSemantic struct {
	Result *SemanticResult
	Err    error
	Calls  int
}

func (m *MockSemantic) Compare(ctx context.Context, userText, expectedText string, threshold float64) (*SemanticResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

type MockPronunciation struct {
	Result *PronunciationResult
	Err    error
	Calls  int
}

func (m *MockPronunciation) Analyze(ctx context.Context, input PronunciationInput) (*PronunciationResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

type MockIntonation struct {
	Result *IntonationResult
	Err    error
	Calls  int
}

func (m *MockIntonation) Check(ctx context.Context, transcript string, stressPatterns []string) (*IntonationResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

type MockRelevance struct {
	Result *RelevanceResult
	Err    error
	Calls  int
}

func (m *MockRelevance) Analyze(ctx context.Context, userText string, contentTopics []string) (*RelevanceResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
