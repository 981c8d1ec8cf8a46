package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"legal-chatbot/internal/api"
	"legal-chatbot/internal/api/handlers"
	"legal-chatbot/internal/dto"
	"legal-chatbot/internal/models"
	"legal-chatbot/internal/repository"
	"legal-chatbot/internal/service"
	"legal-chatbot/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Complete(_ context.Context, _ []models.ChatMessage, _ service.CompletionOptions) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// failingRepository simulates an unreachable remote document store.
type failingRepository struct{}

func (failingRepository) GetAll(context.Context) ([]models.Document, error) {
	return nil, errors.New("store unavailable")
}
func (failingRepository) GetByID(context.Context, int) (*models.Document, error) {
	return nil, errors.New("store unavailable")
}
func (failingRepository) Search(context.Context, string, string, string) ([]models.Document, error) {
	return nil, errors.New("store unavailable")
}
func (failingRepository) Categories(context.Context, string) ([]string, error) {
	return nil, errors.New("store unavailable")
}
func (failingRepository) Similar(context.Context, int, int) ([]models.Document, error) {
	return nil, errors.New("store unavailable")
}

func newTestApp(repo repository.DocumentRepository, llm service.CompletionClient) *fiber.App {
	cfg := &config.ChatbotConfig{
		Model:            "gpt-3.5-turbo",
		MaxHistoryLength: 10,
		Temperature:      0.7,
		MaxTokens:        1000,
	}
	serverCfg := &config.ServerConfig{Port: "8080", ReadTimeout: 30, WriteTimeout: 30}
	chatService := service.NewChatService(repo, llm, cfg, zap.NewNop())
	chatHandler := handlers.NewChatHandler(chatService, zap.NewNop())
	docHandler := handlers.NewDocumentHandler(repo, zap.NewNop())
	return api.SetupRouter(serverCfg, chatHandler, docHandler)
}

func TestServerTimeoutsApplied(t *testing.T) {
	app := newTestApp(repository.NewSeededMemoryRepository(zap.NewNop()), &stubLLM{})

	if got := app.Config().ReadTimeout; got != 30*time.Second {
		t.Errorf("read timeout = %v, want 30s", got)
	}
	if got := app.Config().WriteTimeout; got != 30*time.Second {
		t.Errorf("write timeout = %v, want 30s", got)
	}
}

func postChat(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, data
}

func TestChatBlankMessageRejected(t *testing.T) {
	app := newTestApp(repository.NewSeededMemoryRepository(zap.NewNop()), &stubLLM{response: "x"})

	for _, body := range []string{`{}`, `{"message":"   "}`, `not json`} {
		status, data := postChat(t, app, body)
		if status != fiber.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, status)
		}
		if string(data) != "Message cannot be empty" {
			t.Errorf("body %q: response = %q", body, string(data))
		}
	}
}

func TestChatGreetingResponse(t *testing.T) {
	llm := &stubLLM{response: "should not be used"}
	app := newTestApp(repository.NewSeededMemoryRepository(zap.NewNop()), llm)

	status, data := postChat(t, app, `{"message":"hello","language":"en"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var resp dto.ChatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if llm.calls != 0 {
		t.Errorf("greeting invoked the LLM %d times", llm.calls)
	}
	if resp.Error {
		t.Error("error flag set on a greeting")
	}
	if len(resp.SourceDocuments) != 0 || len(resp.SuggestedTopics) != 0 {
		t.Errorf("greeting carried documents or topics: %+v", resp)
	}
}

func TestChatGroundedResponseCitations(t *testing.T) {
	app := newTestApp(repository.NewSeededMemoryRepository(zap.NewNop()), &stubLLM{response: "The general VAT rate is 18%."})

	status, data := postChat(t, app, `{"message":"What is the VAT rate?","language":"en"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var resp dto.ChatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "The general VAT rate is 18%." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if len(resp.SourceDocuments) == 0 || resp.SourceDocuments[0].ID != 2 {
		t.Errorf("unexpected citations: %+v", resp.SourceDocuments)
	}
	if len(resp.SuggestedTopics) != 0 {
		t.Errorf("topics should be empty with citations present: %v", resp.SuggestedTopics)
	}
}

func TestChatNoDocumentsSuggestsTopics(t *testing.T) {
	llm := &stubLLM{response: "Nothing specific, but you could ask about corporate law."}
	app := newTestApp(repository.NewSeededMemoryRepository(zap.NewNop()), llm)

	status, data := postChat(t, app, `{"message":"admiralty maritime vessel chartering","language":"en"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var resp dto.ChatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.SourceDocuments) != 0 {
		t.Errorf("unexpected citations: %+v", resp.SourceDocuments)
	}
	want := []string{
		"Questions about Corporate Law",
		"Questions about Labor Law",
		"Questions about Taxation",
	}
	if !reflect.DeepEqual(resp.SuggestedTopics, want) {
		t.Errorf("topics = %v, want %v", resp.SuggestedTopics, want)
	}
	if llm.calls != 1 {
		t.Errorf("expected the no-documents prompt to reach the LLM, calls = %d", llm.calls)
	}
}

func TestChatStoreFailureReturnsGenericError(t *testing.T) {
	app := newTestApp(failingRepository{}, &stubLLM{response: "x"})

	status, data := postChat(t, app, `{"message":"What is the VAT rate?","language":"en"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}

	var resp dto.ChatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Error {
		t.Error("error flag not set")
	}
	if resp.Message != service.GenericErrorText("en") {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestListDocuments(t *testing.T) {
	app := newTestApp(repository.NewSeededMemoryRepository(zap.NewNop()), &stubLLM{})

	req := httptest.NewRequest("GET", "/api/documents", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var refs []dto.DocumentReference
	if err := json.NewDecoder(resp.Body).Decode(&refs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(refs) != 7 {
		t.Errorf("document count = %d, want 7", len(refs))
	}
}

func TestSimilarDocuments(t *testing.T) {
	app := newTestApp(repository.NewSeededMemoryRepository(zap.NewNop()), &stubLLM{})

	req := httptest.NewRequest("GET", "/api/documents/1/similar?count=3", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var refs []dto.DocumentReference
	if err := json.NewDecoder(resp.Body).Decode(&refs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(refs) != 1 || refs[0].ID != 5 {
		t.Errorf("unexpected similar documents: %+v", refs)
	}

	req = httptest.NewRequest("GET", "/api/documents/abc/similar", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
