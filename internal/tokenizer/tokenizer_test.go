package tokenizer

import "testing"

// TestNewCounterFallsBackForGeminiModels verifies that Gemini model names resolve to the default encoding.
func TestNewCounterFallsBackForGeminiModels(t *testing.T) {
	counter, resolvedName, err := NewCounter(Config{Model: "gemini-3-pro-preview"})
	if err != nil {
		t.Fatalf("NewCounter error: %v", err)
	}
	if resolvedName != defaultEncodingName {
		t.Fatalf("expected fallback encoding %q, got %q", defaultEncodingName, resolvedName)
	}
	if counter.Name() != defaultEncodingName {
		t.Fatalf("expected counter name %q, got %q", defaultEncodingName, counter.Name())
	}
	tokens, countError := counter.CountString("hello world")
	if countError != nil {
		t.Fatalf("CountString error: %v", countError)
	}
	if tokens <= 0 {
		t.Fatalf("expected positive token count, got %d", tokens)
	}
}

// TestNewCounterUsesModelTableWhenAvailable verifies that models with a tiktoken table keep their own name.
func TestNewCounterUsesModelTableWhenAvailable(t *testing.T) {
	counter, resolvedName, err := NewCounter(Config{Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("NewCounter error: %v", err)
	}
	if resolvedName != "gpt-4o" {
		t.Fatalf("expected model name gpt-4o, got %q", resolvedName)
	}
	if counter == nil {
		t.Fatalf("expected non-nil counter")
	}
}

// TestNewCounterEmptyModelUsesDefault verifies the default encoding for an unspecified model.
func TestNewCounterEmptyModelUsesDefault(t *testing.T) {
	counter, resolvedName, err := NewCounter(Config{})
	if err != nil {
		t.Fatalf("NewCounter error: %v", err)
	}
	if resolvedName != defaultEncodingName {
		t.Fatalf("expected default encoding, got %q", resolvedName)
	}
	tokens, countError := counter.CountString("")
	if countError != nil {
		t.Fatalf("CountString error: %v", countError)
	}
	if tokens != 0 {
		t.Fatalf("expected zero tokens for empty input, got %d", tokens)
	}
}

// TestCountStringGrowsWithInput verifies that longer inputs never yield fewer tokens.
func TestCountStringGrowsWithInput(t *testing.T) {
	counter, _, err := NewCounter(Config{Model: "gemini-2.0-flash-exp"})
	if err != nil {
		t.Fatalf("NewCounter error: %v", err)
	}
	shortCount, shortError := counter.CountString("package main")
	if shortError != nil {
		t.Fatalf("CountString error: %v", shortError)
	}
	longCount, longError := counter.CountString("package main\n\nfunc main() {\n\tprintln(\"hello\")\n}\n")
	if longError != nil {
		t.Fatalf("CountString error: %v", longError)
	}
	if longCount < shortCount {
		t.Fatalf("expected token count to grow with input, got %d then %d", shortCount, longCount)
	}
}
