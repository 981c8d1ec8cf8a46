package dto

import "time"

type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

type DocumentReference struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Category string `json:"category"`
}

type ChatResponse struct {
	Message         string              `json:"message"`
	Timestamp       time.Time           `json:"timestamp"`
	Error           bool                `json:"error"`
	SourceDocuments []DocumentReference `json:"sourceDocuments"`
	SuggestedTopics []string            `json:"suggestedTopics"`
}
