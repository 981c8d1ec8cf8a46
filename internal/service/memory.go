package service

import (
	"sync"

	"legal-chatbot/internal/models"
)

// ConversationMemory is a bounded rolling window of prior turns. It is
// process-wide, not per-request: under concurrent callers turns can
// interleave, so appends and trimming run under one lock to keep the
// window itself consistent.
type ConversationMemory struct {
	mu       sync.Mutex
	messages []models.ChatMessage
	maxLen   int
}

func NewConversationMemory(maxLen int) *ConversationMemory {
	if maxLen < 1 {
		maxLen = 1
	}
	return &ConversationMemory{maxLen: maxLen}
}

// Append adds a message, evicting the oldest entries past the cap.
func (m *ConversationMemory) Append(msg models.ChatMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, msg)
	if len(m.messages) > m.maxLen {
		m.messages = m.messages[len(m.messages)-m.maxLen:]
	}
}

// Recent returns a copy of the last n messages, oldest first.
func (m *ConversationMemory) Recent(n int) []models.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > len(m.messages) {
		n = len(m.messages)
	}
	if n <= 0 {
		return nil
	}
	recent := make([]models.ChatMessage, n)
	copy(recent, m.messages[len(m.messages)-n:])
	return recent
}

func (m *ConversationMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}
