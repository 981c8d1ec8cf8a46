package service

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"legal-chatbot/internal/models"
	"legal-chatbot/internal/repository"
	"legal-chatbot/pkg/config"

	"go.uber.org/zap"
)

type recordedCall struct {
	messages []models.ChatMessage
	opts     CompletionOptions
}

type mockCompletionClient struct {
	response string
	err      error
	calls    []recordedCall
}

func (m *mockCompletionClient) Complete(_ context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	m.calls = append(m.calls, recordedCall{messages: messages, opts: opts})
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func newTestService(llm CompletionClient) *ChatService {
	cfg := &config.ChatbotConfig{
		Model:            "gpt-3.5-turbo",
		MaxHistoryLength: 10,
		Temperature:      0.7,
		MaxTokens:        1000,
	}
	repo := repository.NewSeededMemoryRepository(zap.NewNop())
	return NewChatService(repo, llm, cfg, zap.NewNop())
}

func TestChatGreetingSkipsLLM(t *testing.T) {
	llm := &mockCompletionClient{response: "should not be used"}
	svc := newTestService(llm)

	result, err := svc.Chat(context.Background(), "hello", "en")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if len(llm.calls) != 0 {
		t.Errorf("greeting invoked the LLM %d times", len(llm.calls))
	}
	if result.Message != greetingText("en") {
		t.Errorf("unexpected greeting: %q", result.Message)
	}
	if len(result.Documents) != 0 || len(result.Categories) != 0 {
		t.Error("greeting should carry no documents or categories")
	}
}

func TestChatGeneralQuestion(t *testing.T) {
	llm := &mockCompletionClient{response: "I can answer legal questions."}
	svc := newTestService(llm)

	result, err := svc.Chat(context.Background(), "what can you do", "en")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if result.Message != "I can answer legal questions." {
		t.Errorf("unexpected answer: %q", result.Message)
	}

	if len(llm.calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(llm.calls))
	}
	call := llm.calls[0]
	if call.opts.Temperature != 0.7 || call.opts.MaxTokens != 500 {
		t.Errorf("unexpected options: %+v", call.opts)
	}
	if len(call.messages) != 2 || call.messages[0].Role != models.RoleSystem {
		t.Errorf("unexpected message list: %+v", call.messages)
	}
	if !strings.Contains(call.messages[1].Content, "what can you do") {
		t.Error("user query missing from the prompt")
	}
}

func TestChatLegalQuestionWithDocuments(t *testing.T) {
	llm := &mockCompletionClient{response: "The general VAT rate is 18%."}
	svc := newTestService(llm)

	result, err := svc.Chat(context.Background(), "What is the VAT rate?", "en")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if result.Message != "The general VAT rate is 18%." {
		t.Errorf("unexpected answer: %q", result.Message)
	}
	if len(result.Documents) == 0 || result.Documents[0].ID != 2 {
		t.Fatalf("expected document 2 first, got %+v", result.Documents)
	}
	if len(result.Categories) != 0 {
		t.Error("categories should be empty when documents were retrieved")
	}

	if len(llm.calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(llm.calls))
	}
	call := llm.calls[0]
	if call.opts.Temperature != 0.7 || call.opts.MaxTokens != 1000 {
		t.Errorf("unexpected options: %+v", call.opts)
	}
	prompt := call.messages[len(call.messages)-1].Content
	if !strings.Contains(prompt, "DOCUMENT: Value Added Tax Law (2023)") {
		t.Error("grounded prompt missing the top document header")
	}
	if !strings.Contains(prompt, "What is the VAT rate?") {
		t.Error("grounded prompt missing the user query")
	}

	// User turn plus assistant turn were recorded.
	if svc.memory.Len() != 2 {
		t.Errorf("memory length = %d, want 2", svc.memory.Len())
	}
}

func TestChatLegalQuestionRecencyOrdering(t *testing.T) {
	llm := &mockCompletionClient{response: "одговор"}
	svc := newTestService(llm)

	result, err := svc.Chat(context.Background(), "Која е стапката на ДДВ?", "mk")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if len(result.Documents) < 2 {
		t.Fatalf("expected both VAT laws, got %d documents", len(result.Documents))
	}
	if result.Documents[0].ID != 1 || result.Documents[1].ID != 5 {
		t.Errorf("citation order = %d, %d; want 1, 5", result.Documents[0].ID, result.Documents[1].ID)
	}
}

func TestChatLegalQuestionNoDocuments(t *testing.T) {
	llm := &mockCompletionClient{response: "I have nothing on that topic, but try corporate law."}
	svc := newTestService(llm)

	result, err := svc.Chat(context.Background(), "admiralty maritime vessel chartering", "en")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if len(result.Documents) != 0 {
		t.Errorf("expected no documents, got %d", len(result.Documents))
	}
	want := []string{"Corporate Law", "Labor Law", "Taxation"}
	if !reflect.DeepEqual(result.Categories, want) {
		t.Errorf("categories = %v, want %v", result.Categories, want)
	}
	if len(llm.calls) != 1 {
		t.Fatalf("expected the no-documents prompt to reach the LLM")
	}
	if !strings.Contains(llm.calls[0].messages[1].Content, "admiralty maritime vessel chartering") {
		t.Error("no-documents prompt missing the user query")
	}
}

func TestChatLegalFallbackOnLLMFailure(t *testing.T) {
	llm := &mockCompletionClient{err: &CompletionError{Code: "429", Type: "rate_limit", Message: "slow down"}}
	svc := newTestService(llm)

	result, err := svc.Chat(context.Background(), "What is the VAT rate?", "en")
	if err != nil {
		t.Fatalf("llm failure must not surface as an error: %v", err)
	}
	if result.Message != legalFallback("en") {
		t.Errorf("unexpected fallback: %q", result.Message)
	}
	if len(result.Documents) == 0 {
		t.Error("citations should survive an LLM failure")
	}

	// Only the user turn was recorded; no assistant entry for a failed call.
	if svc.memory.Len() != 1 {
		t.Errorf("memory length = %d, want 1", svc.memory.Len())
	}
	if recent := svc.memory.Recent(1); recent[0].Role != models.RoleUser {
		t.Errorf("last memory entry role = %s, want user", recent[0].Role)
	}
}

func TestChatGeneralFallbackOnLLMFailure(t *testing.T) {
	llm := &mockCompletionClient{err: &CompletionError{Message: "boom"}}
	svc := newTestService(llm)

	result, err := svc.Chat(context.Background(), "who are you", "mk")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if result.Message != generalFallback("mk") {
		t.Errorf("unexpected fallback: %q", result.Message)
	}
}

func TestChatHistoryWindowInGroundedPrompt(t *testing.T) {
	llm := &mockCompletionClient{response: "ok"}
	svc := newTestService(llm)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := svc.Chat(ctx, "What is the VAT rate?", "en"); err != nil {
			t.Fatalf("chat failed: %v", err)
		}
	}

	last := llm.calls[len(llm.calls)-1]
	// system + 4 history entries + grounded user message.
	if len(last.messages) != 6 {
		t.Errorf("message count = %d, want 6", len(last.messages))
	}
	if last.messages[0].Role != models.RoleSystem {
		t.Error("first message must be the system prompt")
	}
}
